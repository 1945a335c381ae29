package bitmap

import (
	"image"
	"image/color"
)

// Layout follows https://github.com/gonutz/framebuffer

// RGB565Model converts any color to the panel's 16 bit color.
var RGB565Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(RGB565Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return pack(r, g, b)
})

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		Pix:    make([]byte, 2*r.Dx()*r.Dy()),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

// RGB565 is a little endian 16 bit frame, two bytes per pixel:
//
//    bit 76543210  76543210
//        GGGBBBBB  RRRRRGGG
//        low byte  high byte
type RGB565 struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

func (d *RGB565) Bounds() image.Rectangle {
	return d.Rect
}

func (d *RGB565) ColorModel() color.Model {
	return RGB565Model
}

func (d *RGB565) offset(x, y int) int {
	return (y-d.Rect.Min.Y)*d.Stride + 2*(x-d.Rect.Min.X)
}

func (d *RGB565) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.Rect)) {
		return RGB565Color(0)
	}
	i := d.offset(x, y)
	return RGB565Color(d.Pix[i+1])<<8 | RGB565Color(d.Pix[i])
}

// Set ignores fully transparent colors.
func (d *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(d.Rect)) {
		return
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	v := pack(r, g, b)
	i := d.offset(x, y)
	d.Pix[i+1] = byte(v >> 8)
	d.Pix[i] = byte(v & 0xFF)
}

// pack keeps the highest 5, 6 and 5 bits of the 16 bit channels.
func pack(r, g, b uint32) RGB565Color {
	return RGB565Color((r & 0xF800) | ((g & 0xFC00) >> 5) | ((b & 0xF800) >> 11))
}

// RGB565Color is always opaque.
type RGB565Color uint16

func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	// widen each channel by repeating its bit pattern, so 0 maps to 0 and
	// all ones maps to 0xFFFF
	rBits := uint32(c & 0xF800)
	gBits := uint32(c & 0x7E0)
	bBits := uint32(c & 0x1F)
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
