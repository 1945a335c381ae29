// Package idle keeps a program alive between discrete actions.
package idle

import (
	"context"
	"time"
)

const DefaultInterval = time.Second

type Option func(l *loop)

// WithTick calls fn after every sleep, with the 1-based iteration count.
func WithTick(fn func(n int)) Option {
	return func(l *loop) {
		l.tick = fn
	}
}

type loop struct {
	tick func(n int)
}

// Run sleeps interval per iteration until ctx is done, then returns ctx.Err().
// It never returns nil.
func Run(ctx context.Context, interval time.Duration, opts ...Option) error {
	l := &loop{}
	for _, opt := range opts {
		opt(l)
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if l.tick != nil {
				l.tick(n)
			}
			timer.Reset(interval)
		}
	}
}
