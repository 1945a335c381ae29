package idle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ticks int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, time.Millisecond, WithTick(func(n int) {
			atomic.StoreInt32(&ticks, int32(n))
			if n == 3 {
				cancel()
			}
		}))
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("idle loop did not stop after cancel")
	}
	assert.EqualValues(t, 3, atomic.LoadInt32(&ticks))
}

func TestRunDoesNotReturnOnItsOwn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Run(ctx, time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Run(ctx, 0), context.Canceled)
}
