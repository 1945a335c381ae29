package virtual

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPanelRecordsFrames(t *testing.T) {
	p := New(4, 4, zap.NewNop())

	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{0, 255, 10, 245}

	require.NoError(t, p.Startup())
	require.NoError(t, p.DrawBitmap(1, 1, src))

	frames := p.Frames()
	require.Len(t, frames, 1)
	assert.NotEmpty(t, frames[0].ID)
	assert.Equal(t, image.Pt(1, 1), frames[0].At)
	assert.Equal(t, color.NRGBA{R: 245, G: 245, B: 245, A: 255}, frames[0].Img.At(1, 1))

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, p.Screen().At(2, 1))
	assert.Equal(t, []string{"startup", "draw-bitmap"}, p.Calls())
}

func TestPanelRotate(t *testing.T) {
	p := New(320, 480, zap.NewNop())

	require.NoError(t, p.SetRotate(true, false))
	assert.Equal(t, image.Pt(480, 320), p.Size())

	require.NoError(t, p.SetRotate(true, true))
	assert.Equal(t, image.Pt(480, 320), p.Size())
}
