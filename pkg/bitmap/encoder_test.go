package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeLayout(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	src.Set(1, 0, color.NRGBA{B: 0xFF, A: 0xFF})

	assert.Equal(t, []byte{0x00, 0xF8, 0x1F, 0x00}, Encode(src))
}

func TestEncodeSkipsTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0})

	assert.Equal(t, []byte{0, 0}, Encode(src))
}

func TestRGB565RoundTrip(t *testing.T) {
	d := NewRGB565(image.Rect(4, 4, 6, 6))
	d.Set(5, 5, color.White)

	r, g, b, a := d.At(5, 5).RGBA()
	assert.Equal(t, [4]uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, [4]uint32{r, g, b, a})

	r, _, _, _ = d.At(4, 4).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, RGB565Color(0), d.At(100, 100))
}
