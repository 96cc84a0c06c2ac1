// Package imaging provides the image side of the portfolio demos: decoding
// uploads, the gradient-magnitude edge filter, display previews and PNG
// encoding for transport.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward. Results are always rebased to an origin of (0,0), even
// when the source image's bounds start elsewhere.
//
// # Edge Filter
//
// EdgeMagnitude converts an image to 8-bit luminance, takes central
// differences along both axes, and stretches the resulting magnitude so the
// strongest edge is white (255). Output contrast therefore depends on the
// image: two images with different gradient ranges are not thresholded on a
// common scale. A uniform image has no gradient and yields an all-black
// result.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless, allocates its own output, and can be called concurrently.
//
// # Error Handling
//
// The filter itself never fails. Errors are returned only at the edges:
//   - File I/O errors during image loading or saving
//   - Undecodable or unsupported image data
//   - Encoding errors during image output
package imaging
