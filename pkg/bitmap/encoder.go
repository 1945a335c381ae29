package bitmap

import (
	"image"
)

// Encode converts src to the byte stream the panel expects, row by row.
func Encode(src image.Image) []byte {
	if d, ok := src.(*RGB565); ok {
		return d.Pix
	}

	b := src.Bounds()
	dst := NewRGB565(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}

	return dst.Pix
}
