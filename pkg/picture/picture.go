// Package picture loads image assets into a mutable 8 bit pixel buffer.
package picture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
)

// Image owns its pixels. Gray sources stay one byte per pixel, anything else
// is held as non-premultiplied RGBA.
type Image struct {
	buf draw.Image
}

func FromImage(src image.Image) *Image {
	switch s := src.(type) {
	case *image.Gray:
		cp := image.NewGray(image.Rect(0, 0, s.Rect.Dx(), s.Rect.Dy()))
		draw.Draw(cp, cp.Rect, s, s.Rect.Min, draw.Src)
		return &Image{buf: cp}
	default:
		return &Image{buf: imaging.Clone(src)}
	}
}

func Decode(bs []byte) (*Image, error) {
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	return FromImage(img), nil
}

func Open(fs afero.Fs, path string) (*Image, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	img, err := Decode(bs)
	if err != nil {
		return nil, fmt.Errorf("open image %s (%s): %w", path, bytesize.New(float64(len(bs))), err)
	}
	return img, nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Invert replaces every color channel value v with 255-v. Alpha is kept.
func (i *Image) Invert() {
	switch b := i.buf.(type) {
	case *image.Gray:
		for k := range b.Pix {
			b.Pix[k] = 0xFF - b.Pix[k]
		}
	case *image.NRGBA:
		for k := 0; k < len(b.Pix); k += 4 {
			b.Pix[k] = 0xFF - b.Pix[k]
			b.Pix[k+1] = 0xFF - b.Pix[k+1]
			b.Pix[k+2] = 0xFF - b.Pix[k+2]
		}
	}
}

// Pix returns a copy of the raw pixel buffer.
func (i *Image) Pix() []byte {
	switch b := i.buf.(type) {
	case *image.Gray:
		return append([]byte(nil), b.Pix...)
	case *image.NRGBA:
		return append([]byte(nil), b.Pix...)
	}
	return nil
}

func (i *Image) Gray() bool {
	_, ok := i.buf.(*image.Gray)
	return ok
}

func (i *Image) Width() int {
	return i.buf.Bounds().Dx()
}

func (i *Image) Height() int {
	return i.buf.Bounds().Dy()
}

func (i *Image) Bounds() image.Rectangle {
	return i.buf.Bounds()
}

func (i *Image) ColorModel() color.Model {
	return i.buf.ColorModel()
}

func (i *Image) At(x, y int) color.Color {
	return i.buf.At(x, y)
}
