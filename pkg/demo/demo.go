// Package demo holds the two display demo programs as plain procedures so the
// commands stay thin and the behaviour can be driven from tests.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"maixlcd/pkg/idle"
	"maixlcd/pkg/lcd"
	"maixlcd/pkg/picture"
)

// DefaultAsset is the icon shipped on the board.
const DefaultAsset = "/maixapp/share/icon/maixvision.png"

type Loader interface {
	Load(ctx context.Context, src string) (*picture.Image, error)
}

type Options struct {
	Asset    string
	Interval time.Duration
	Logger   *zap.Logger

	// Mirror and Clear are only used by Info, both off by default.
	Mirror bool
	Clear  bool
	// Once makes Info return after printing instead of idling.
	Once bool
}

func (o *Options) asset() string {
	if o.Asset == "" {
		return DefaultAsset
	}
	return o.Asset
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) idle(ctx context.Context) error {
	log := o.logger()
	log.With(zap.Duration("interval", o.Interval)).Info("idle")
	return idle.Run(ctx, o.Interval, idle.WithTick(func(n int) {
		log.With(zap.Int("n", n)).Debug("tick")
	}))
}

// Invert initializes the display, shows the inverted asset and then idles
// until ctx is cancelled.
func Invert(ctx context.Context, screen *lcd.LCD, loader Loader, opts Options) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}

	img, err := loader.Load(ctx, opts.asset())
	if err != nil {
		return fmt.Errorf("load asset: %w", err)
	}

	img.Invert()

	if err := screen.Display(img); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return opts.idle(ctx)
}

// Info shows the asset as is and prints the display size to out.
func Info(ctx context.Context, screen *lcd.LCD, loader Loader, out io.Writer, opts Options) error {
	img, err := loader.Load(ctx, opts.asset())
	if err != nil {
		return fmt.Errorf("load asset: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}

	if opts.Mirror {
		if err := screen.Mirror(true); err != nil {
			return fmt.Errorf("mirror: %w", err)
		}
	}

	if err := screen.Display(img); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if opts.Clear {
		if err := screen.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	if _, err := fmt.Fprintf(out, "lcd width: %d\nlcd height: %d\n", screen.Width(), screen.Height()); err != nil {
		return fmt.Errorf("print size: %w", err)
	}

	if opts.Once {
		return nil
	}
	return opts.idle(ctx)
}
