package inch35

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"maixlcd/pkg/bitmap"
	"maixlcd/pkg/proto"
)

const (
	Restart    = 101
	Shutdown   = 108
	Startup    = 109
	SetLight   = 110
	SetRotate  = 121
	SetMirror  = 122
	DrawPixels = 195
	DrawBitmap = 197
	TESTING    = 255
)

const (
	Width  = 320
	Height = 480
)

var (
	ErrWidthOverflow  = errors.New("width overflow")
	ErrHeightOverflow = errors.New("height overflow")
)

func New(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	if err := serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: time.Millisecond,
	}); err != nil {
		return nil, err
	}
	return newInch35(serial, logger), nil
}

func newInch35(link io.Writer, logger *zap.Logger) *Inch35 {
	return &Inch35{
		link:   link,
		logger: logger.With(zap.String("device", "inch35")),
		width:  Width,
		height: Height,
	}
}

type Inch35 struct {
	link   io.Writer
	logger *zap.Logger
	width  int
	height int
}

func (i *Inch35) Size() image.Point {
	return image.Pt(i.width, i.height)
}

func (i *Inch35) Startup() error {
	return i.sendCMD(Startup)
}

func (i *Inch35) Shutdown() error {
	if err := i.sendCMD(Shutdown); err != nil {
		return err
	}
	if c, ok := i.link.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (i *Inch35) Restart() error {
	return i.sendCMD(Restart)
}

// SetLight takes the panel's raw value, 0 is brightest.
func (i *Inch35) SetLight(light uint8) error {
	return i.sendCMD(SetLight, int(light))
}

func (i *Inch35) SetRotate(landscape bool, invert bool) error {
	ov := 100
	w, h := Width, Height
	if landscape {
		ov++
		w, h = h, w
	}
	if invert {
		ov++
	}

	var bs bytes.Buffer
	bs.WriteByte(uint8(ov))
	_ = binary.Write(&bs, binary.BigEndian, uint16(w))
	_ = binary.Write(&bs, binary.BigEndian, uint16(h))

	if err := i.sendOpt(SetRotate, 16, bs.Bytes()); err != nil {
		return err
	}

	i.width, i.height = w, h
	return nil
}

func (i *Inch35) SetMirror(mirror bool) error {
	return i.sendOpt(SetMirror, 16, []byte{lo.Ternary[byte](mirror, 1, 0)})
}

func (i *Inch35) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	rect := image.Bounds().Size()
	imgW := rect.X
	imgH := rect.Y

	if imgW+int(posX) > i.width {
		return ErrWidthOverflow
	} else if imgH+int(posY) > i.height {
		return ErrHeightOverflow
	}

	if err := i.sendCMD(DrawBitmap, int(posX), int(posY), int(posX)+imgW-1, int(posY)+imgH-1); err != nil {
		return err
	}

	return i.sendBytes(bitmap.Encode(image))
}
