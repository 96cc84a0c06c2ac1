package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Luminance converts an image to a matrix of 8-bit luminance values.
//
// The matrix is indexed [y][x] with the origin at the image's top-left pixel.
// Each value is 0.299*R + 0.587*G + 0.114*B on the non-premultiplied 8-bit
// channels, rounded to the nearest integer (ITU-R BT.601). Alpha is ignored.
func Luminance(img image.Image) [][]float64 {
	gray := imaging.Grayscale(img)
	width := gray.Rect.Dx()
	height := gray.Rect.Dy()

	lum := make([][]float64, height)
	for y := 0; y < height; y++ {
		lum[y] = make([]float64, width)
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < width; x++ {
			// R, G and B are identical after Grayscale.
			lum[y][x] = float64(row[x*4])
		}
	}
	return lum
}

// EdgeMagnitude approximates edge detection with a gradient-magnitude filter.
//
// Parameters:
//   - img: Source image (color or grayscale, any bounds).
//
// Returns:
//   - *image.Gray: Magnitude image with the same width and height as img,
//     bounds starting at (0,0).
//
// # Algorithm
//
//  1. Grayscale conversion, see Luminance.
//
//  2. Central differences:
//     Gx[y][x] = L[y][x+1] - L[y][x-1] for 1 <= x <= W-2, zero on the
//     left and right columns.
//     Gy[y][x] = L[y+1][x] - L[y-1][x] for 1 <= y <= H-2, zero on the
//     top and bottom rows.
//
//  3. Magnitude: sqrt(Gx² + Gy²).
//
//  4. Normalization: when the largest magnitude is positive, every value
//     is divided by it and multiplied by 255, so the strongest edge maps to
//     exactly 255. Otherwise the output stays black.
//
//  5. Values are clamped to [0,255] and truncated to 8 bits.
func EdgeMagnitude(img image.Image) *image.Gray {
	lum := Luminance(img)
	height := len(lum)
	width := 0
	if height > 0 {
		width = len(lum[0])
	}

	magnitude := make([][]float64, height)
	var peak float64
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			if x > 0 && x < width-1 {
				gx = lum[y][x+1] - lum[y][x-1]
			}
			if y > 0 && y < height-1 {
				gy = lum[y+1][x] - lum[y-1][x]
			}
			m := math.Sqrt(gx*gx + gy*gy)
			magnitude[y][x] = m
			if m > peak {
				peak = m
			}
		}
	}

	result := image.NewGray(image.Rect(0, 0, width, height))
	if peak == 0 {
		return result
	}

	for y := 0; y < height; y++ {
		row := result.Pix[y*result.Stride:]
		for x := 0; x < width; x++ {
			row[x] = uint8(clampFloat(magnitude[y][x]/peak*255, 0, 255))
		}
	}
	return result
}

// EdgeMagnitudeEncoded runs EdgeMagnitude and encodes the result as a base64
// PNG. The returned error is non-nil only if encoding fails.
func EdgeMagnitudeEncoded(img image.Image) (*EncodedImage, error) {
	return EncodePNG(EdgeMagnitude(img))
}

// clampFloat constrains a value to the range [min, max].
func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
