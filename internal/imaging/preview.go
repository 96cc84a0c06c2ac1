package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Preview returns a copy of img scaled down to fit within maxDim×maxDim,
// preserving the aspect ratio. Images that already fit, and a non-positive
// maxDim, return img unchanged. Preview never upscales.
//
// Previews are for side-by-side display only; filters run on the original.
func Preview(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	if maxDim <= 0 || (bounds.Dx() <= maxDim && bounds.Dy() <= maxDim) {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// PreviewEncoded returns Preview(img, maxDim) as a base64 PNG.
func PreviewEncoded(img image.Image, maxDim int) (*EncodedImage, error) {
	return EncodePNG(Preview(img, maxDim))
}
