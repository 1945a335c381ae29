package picture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger.With(zap.String("via", "loader")),
	}
}

// Loader reads assets from a filesystem or over http(s).
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

// WithProgress sends the download bar to w. Without it downloads are silent.
func (l *Loader) WithProgress(w io.Writer) *Loader {
	l.progress = w
	return l
}

func (l *Loader) Load(ctx context.Context, src string) (*Image, error) {
	if isURL(src) {
		return l.Fetch(ctx, src)
	}

	img, err := Open(l.fs, src)
	if err != nil {
		return nil, err
	}

	l.log.With(zap.String("path", src), zap.Int("w", img.Width()), zap.Int("h", img.Height())).Debug("loaded")
	return img, nil
}

func (l *Loader) Fetch(ctx context.Context, url string) (*Image, error) {
	resp, err := l.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: unexpected status %s", url, resp.Status())
	}

	var dst io.Writer = io.Discard
	if l.progress != nil {
		dst = progressbar.NewOptions64(
			resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
		)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, dst), resp.RawBody()); err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}

	l.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("fetched")
	return img, nil
}
