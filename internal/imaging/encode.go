package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// MimePNG is the MIME type of every encoded result.
const MimePNG = "image/png"

// EncodedImage contains an image encoded as base64 PNG for transport.
type EncodedImage struct {
	// Width of the image in pixels.
	Width int `json:"width"`

	// Height of the image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the PNG data, standard base64 encoded.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG encodes img as PNG and wraps it in an EncodedImage.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	data, err := PNGBytes(img)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    MimePNG,
	}, nil
}

// PNGBytes returns the raw PNG encoding of img.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
