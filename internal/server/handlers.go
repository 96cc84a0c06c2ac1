package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kavya-marri/portfolio-demos/internal/agro"
	"github.com/kavya-marri/portfolio-demos/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "crop_recommend").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_edge_magnitude":
		return s.handleImageEdgeMagnitude(args)
	case "crop_recommend":
		return s.handleCropRecommend(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func parsePathArgs(args json.RawMessage) (imagePathArgs, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, err
	}
	if a.Path == "" {
		return a, errors.New("path is required")
	}
	return a, nil
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageEdgeMagnitude(args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeMagnitudeEncoded(img)
}

// === Crop Advisor Handlers ===

// cropRecommendArgs uses pointers so a missing reading is distinguishable from zero.
type cropRecommendArgs struct {
	N           *float64 `json:"n"`
	P           *float64 `json:"p"`
	K           *float64 `json:"k"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
	Rainfall    *float64 `json:"rainfall"`
}

func (a cropRecommendArgs) reading() (agro.SoilReading, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"n", a.N}, {"p", a.P}, {"k", a.K},
		{"temperature", a.Temperature}, {"humidity", a.Humidity},
		{"ph", a.PH}, {"rainfall", a.Rainfall},
	}
	var missing []string
	for _, f := range fields {
		if f.v == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return agro.SoilReading{}, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}
	return agro.SoilReading{
		N:           *a.N,
		P:           *a.P,
		K:           *a.K,
		Temperature: *a.Temperature,
		Humidity:    *a.Humidity,
		PH:          *a.PH,
		Rainfall:    *a.Rainfall,
	}, nil
}

func (s *Server) handleCropRecommend(args json.RawMessage) (interface{}, error) {
	var a cropRecommendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	reading, err := a.reading()
	if err != nil {
		return nil, err
	}
	return agro.Recommend(reading), nil
}
