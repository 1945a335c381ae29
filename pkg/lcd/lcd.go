// Package lcd is the display handle used by the demo programs.
//
// An LCD owns one panel backend. It has to be initialized exactly once before
// anything is drawn or queried, and closed when the program is done with it.
package lcd

import (
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"maixlcd/pkg/proto"
)

var (
	ErrNotInitialized     = errors.New("lcd not initialized")
	ErrAlreadyInitialized = errors.New("lcd already initialized")
	ErrClosed             = errors.New("lcd closed")
)

func New(dev proto.Control, logger *zap.Logger) *LCD {
	return &LCD{dev: dev, log: logger.With(zap.String("via", "lcd"))}
}

type LCD struct {
	mu     sync.Mutex
	dev    proto.Control
	log    *zap.Logger
	ready  bool
	closed bool
	frames int
}

// Init powers the panel on.
func (l *LCD) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if l.ready {
		return ErrAlreadyInitialized
	}

	if err := l.dev.Startup(); err != nil {
		return errors.Wrap(err, "startup")
	}

	l.ready = true
	l.log.Debug("initialized")
	return nil
}

func (l *LCD) check() error {
	if l.closed {
		return ErrClosed
	}
	if !l.ready {
		return ErrNotInitialized
	}
	return nil
}

// Display draws img centered on the panel. Images that do not fit are scaled
// down first, keeping their aspect ratio.
func (l *LCD) Display(img image.Image) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.check(); err != nil {
		return err
	}

	size := l.dev.Size()
	b := img.Bounds()
	if b.Dx() > size.X || b.Dy() > size.Y {
		img = imaging.Fit(img, size.X, size.Y, imaging.Lanczos)
		b = img.Bounds()
	}

	x := (size.X - b.Dx()) / 2
	y := (size.Y - b.Dy()) / 2

	if err := l.dev.DrawBitmap(uint16(x), uint16(y), img); err != nil {
		return errors.Wrap(err, "draw bitmap")
	}

	l.frames++
	l.log.With(
		zap.Int("frame", l.frames),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("displayed")
	return nil
}

// Clear paints the whole panel black.
func (l *LCD) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.check(); err != nil {
		return err
	}

	size := l.dev.Size()
	black := imaging.New(size.X, size.Y, color.Black)
	return errors.Wrap(l.dev.DrawBitmap(0, 0, black), "clear")
}

func (l *LCD) Mirror(mirror bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.check(); err != nil {
		return err
	}
	return l.dev.SetMirror(mirror)
}

// Width is 0 before Init.
func (l *LCD) Width() int {
	return l.size().X
}

// Height is 0 before Init.
func (l *LCD) Height() int {
	return l.size().Y
}

func (l *LCD) size() image.Point {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.check() != nil {
		return image.Point{}
	}
	return l.dev.Size()
}

// Frames counts successful Display calls.
func (l *LCD) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Close shuts the panel down if it was initialized. Calling it again is a no-op.
func (l *LCD) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if !l.ready {
		return nil
	}
	l.log.Debug("shutdown")
	return l.dev.Shutdown()
}
