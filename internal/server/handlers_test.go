package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kavya-marri/portfolio-demos/internal/agro"
	"github.com/kavya-marri/portfolio-demos/internal/imaging"
)

// createTestImageFile writes a PNG whose left half is c1 and right half c2.
func createTestImageFile(t *testing.T, width, height int, c1, c2 color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, c1)
			} else {
				img.Set(x, y, c2)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool runs a tools/call request and returns the decoded text payload.
func callTool(t *testing.T, s *Server, name string, args interface{}) (*MCPResponse, string) {
	t.Helper()

	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	params, _ := json.Marshal(ToolCallParams{Name: name, Arguments: argsJSON})

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp, ""
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %+v", content)
	}
	return resp, content[0]["text"].(string)
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New("test")
	path := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255}, color.RGBA{255, 0, 0, 255})

	resp, text := callTool(t, s, "image_load", map[string]string{"path": path})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	var info imaging.ImageInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Width != 100 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_EdgeMagnitude(t *testing.T) {
	s := New("test")
	path := createTestImageFile(t, 8, 4, color.Black, color.White)

	resp, text := callTool(t, s, "image_edge_magnitude", map[string]string{"path": path})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	var enc imaging.EncodedImage
	if err := json.Unmarshal([]byte(text), &enc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if enc.Width != 8 || enc.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 8x4", enc.Width, enc.Height)
	}
	if enc.MimeType != imaging.MimePNG {
		t.Errorf("mime type: got %s", enc.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(enc.ImageBase64)
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	out, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	gray, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray, got %T", out)
	}
	// The step sits between columns 3 and 4; the outer columns carry no Gx.
	if got := gray.GrayAt(3, 1).Y; got != 255 {
		t.Errorf("edge pixel: got %d, want 255", got)
	}
	if got := gray.GrayAt(1, 1).Y; got != 0 {
		t.Errorf("flat pixel: got %d, want 0", got)
	}
	if got := gray.GrayAt(7, 1).Y; got != 0 {
		t.Errorf("border pixel: got %d, want 0", got)
	}
}

func TestHandleToolsCall_CropRecommend(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]float64
		wantCrop  agro.Crop
		wantNotes []string
	}{
		{
			"rice",
			map[string]float64{"n": 100, "p": 50, "k": 100, "temperature": 25, "humidity": 70, "ph": 6.5, "rainfall": 120},
			agro.Rice,
			[]string{},
		},
		{
			"millets with every note",
			map[string]float64{"n": 10, "p": 10, "k": 10, "temperature": 15, "humidity": 20, "ph": 4.5, "rainfall": 10},
			agro.Millets,
			[]string{agro.NoteLowPH, agro.NoteLowHumidity, agro.NoteLowRainfall},
		},
		{
			"zeros are valid readings",
			map[string]float64{"n": 0, "p": 0, "k": 0, "temperature": 0, "humidity": 0, "ph": 0, "rainfall": 0},
			agro.Millets,
			[]string{agro.NoteLowPH, agro.NoteLowHumidity, agro.NoteLowRainfall},
		},
	}

	s := New("test")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, text := callTool(t, s, "crop_recommend", tt.args)
			if resp.Error != nil {
				t.Fatalf("unexpected error: %+v", resp.Error)
			}

			var rec agro.Recommendation
			if err := json.Unmarshal([]byte(text), &rec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if rec.Crop != tt.wantCrop {
				t.Errorf("crop: got %s, want %s", rec.Crop, tt.wantCrop)
			}
			if len(rec.Notes) != len(tt.wantNotes) {
				t.Fatalf("notes: got %v, want %v", rec.Notes, tt.wantNotes)
			}
			for i := range tt.wantNotes {
				if rec.Notes[i] != tt.wantNotes[i] {
					t.Errorf("note %d: got %q, want %q", i, rec.Notes[i], tt.wantNotes[i])
				}
			}
		})
	}
}

func TestHandleToolsCall_CropRecommendMissingArgs(t *testing.T) {
	s := New("test")
	resp, _ := callTool(t, s, "crop_recommend", map[string]float64{"n": 1, "p": 2})

	if resp.Error == nil {
		t.Fatal("expected error")
	}
	if resp.Error.Code != codeToolFailure {
		t.Errorf("code: got %d, want %d", resp.Error.Code, codeToolFailure)
	}
	data, _ := resp.Error.Data.(string)
	for _, name := range []string{"k", "temperature", "humidity", "ph", "rainfall"} {
		if !strings.Contains(data, name) {
			t.Errorf("error %q should name missing %q", data, name)
		}
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New("test")

	tests := []struct {
		name string
		tool string
		args interface{}
	}{
		{"unknown tool", "image_rotate", map[string]string{}},
		{"missing path", "image_load", map[string]string{}},
		{"nonexistent file", "image_edge_magnitude", map[string]string{"path": "/nonexistent/x.png"}},
		{"wrong arg type", "crop_recommend", map[string]string{"n": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected error")
			}
			if resp.Error.Code != codeToolFailure {
				t.Errorf("code: got %d, want %d", resp.Error.Code, codeToolFailure)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New("test")
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	if resp.Error == nil || resp.Error.Code != codeInvalidParams {
		t.Errorf("got %+v, want code %d", resp.Error, codeInvalidParams)
	}
}

func TestMustMarshalJSON(t *testing.T) {
	got := mustMarshalJSON(map[string]int{"a": 1})
	if got != "{\n  \"a\": 1\n}" {
		t.Errorf("got %q", got)
	}
	if got := mustMarshalJSON(make(chan int)); got != "" {
		t.Errorf("unmarshalable value: got %q, want empty", got)
	}
}
