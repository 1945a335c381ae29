package picture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func grayPNG(t *testing.T, pix ...byte) []byte {
	t.Helper()
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(src.Pix, pix)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	return buf.Bytes()
}

func TestOpenGray(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/icon.png", grayPNG(t, 0, 255, 10, 245), 0644))

	img, err := Open(fs, "/icon.png")
	require.NoError(t, err)
	assert.True(t, img.Gray())
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, []byte{0, 255, 10, 245}, img.Pix())
}

func TestInvertGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []byte{0, 255, 10, 245}
	img := FromImage(src)

	img.Invert()
	assert.Equal(t, []byte{255, 0, 245, 10}, img.Pix())

	img.Invert()
	assert.Equal(t, []byte{0, 255, 10, 245}, img.Pix())

	// the source is not touched
	assert.Equal(t, []byte{0, 255, 10, 245}, src.Pix)
}

func TestInvertKeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 10, G: 200, B: 0, A: 128})
	img := FromImage(src)

	img.Invert()
	assert.False(t, img.Gray())
	assert.Equal(t, []byte{245, 55, 255, 128}, img.Pix())
}

func TestFromSubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.Pix[5] = 7
	sub := src.SubImage(image.Rect(1, 1, 3, 3))

	img := FromImage(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.Gray{Y: 7}, img.At(0, 0))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(afero.NewMemMapFs(), "/maixapp/share/icon/maixvision.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/maixapp/share/icon/maixvision.png")
}

func TestOpenGarbage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/icon.png", []byte("not an image"), 0644))

	_, err := Open(fs, "/icon.png")
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestLoaderFetch(t *testing.T) {
	body := grayPNG(t, 1, 2, 3, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icon.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	var progress bytes.Buffer
	l := NewLoader(afero.NewMemMapFs(), zap.NewNop()).WithProgress(&progress)

	img, err := l.Load(context.Background(), srv.URL+"/icon.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Pix())

	_, err = l.Load(context.Background(), srv.URL+"/missing.png")
	assert.Error(t, err)
}

func TestLoaderFilesystem(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.png", grayPNG(t, 9, 9, 9, 9), 0644))

	img, err := NewLoader(fs, zap.NewNop()).Load(context.Background(), "/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9, 9, 9}, img.Pix())
}
