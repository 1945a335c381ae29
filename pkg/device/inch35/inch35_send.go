package inch35

import (
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (i *Inch35) sendCMD(code uint8, vars ...int) error {
	if len(vars) > 4 {
		return errors.New("too many vars")
	}

	var args [4]int
	copy(args[:], vars)

	return i.sendRaw(code, args, nil)
}

// sendOpt frames an option payload into a fixed size packet behind the
// 6 byte header.
func (i *Inch35) sendOpt(code uint8, fixed int, payload []byte) error {
	if len(payload)+6 > fixed {
		return errors.New("too many bytes")
	}

	frame := make([]byte, fixed)
	copy(frame[6:], payload)

	return i.sendRaw(code, [4]int{}, frame)
}

// sendRaw packs four 10 bit values and the command code into the header.
func (i *Inch35) sendRaw(code uint8, v [4]int, frame []byte) error {
	if len(frame) == 0 {
		frame = make([]byte, 6)
	}

	frame[0] = byte(v[0] >> 2)
	frame[1] = byte(((v[0] & 3) << 6) + (v[1] >> 4))
	frame[2] = byte(((v[1] & 0xF) << 4) + (v[2] >> 6))
	frame[3] = byte(((v[2] & 0x3F) << 2) + (v[3] >> 8))
	frame[4] = byte(v[3] & 0xFF)
	frame[5] = code

	return i.sendBytes(frame)
}

func (i *Inch35) sendBytes(bs []byte) error {
	start := time.Now()
	sent, err := i.link.Write(bs)
	if err != nil {
		return errors.Wrap(err, "serial write")
	}

	ext := ""
	if len(bs) <= 16 {
		ext = fmt.Sprintf("%x", bs)
	}

	i.logger.With(
		zap.String("sent", bytesize.New(float64(sent)).String()),
		zap.Duration("cost", time.Since(start)),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}
