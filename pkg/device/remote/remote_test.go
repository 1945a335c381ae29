package remote

import (
	"image"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maixlcd/pkg/device/virtual"
)

func TestClientServer(t *testing.T) {
	panel := virtual.New(64, 32, zap.NewNop())

	h, err := NewHandler(panel, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	defer srv.Close()

	dev, err := New(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)

	require.NoError(t, dev.Startup())
	assert.Equal(t, image.Pt(64, 32), dev.Size())
	require.NoError(t, dev.SetMirror(true))

	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{0, 255, 10, 245}
	require.NoError(t, dev.DrawBitmap(3, 4, src))

	frames := panel.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, image.Pt(3, 4), frames[0].At)
	assert.True(t, panel.Mirrored())

	require.NoError(t, dev.Shutdown())
	assert.Equal(t,
		[]string{"startup", "size", "set-mirror", "draw-bitmap", "shutdown"},
		panel.Calls(),
	)
}

func TestUnknownCommand(t *testing.T) {
	svc := &Service{dev: virtual.New(1, 1, zap.NewNop()), log: zap.NewNop()}
	err := svc.Command("reboot", &Ack{})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
