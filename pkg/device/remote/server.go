package remote

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maixlcd/pkg/proto"
)

var ErrUnknownCommand = errors.New("unknown command")

// NewHandler exposes dev as an rpc endpoint reachable through rpc.DialHTTP.
func NewHandler(dev proto.Control, logger *zap.Logger) (http.Handler, error) {
	srv := rpc.NewServer()
	if err := srv.Register(&Service{dev: dev, log: logger}); err != nil {
		return nil, err
	}
	return srv, nil
}

func Proxy(dev proto.Control, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	h, err := NewHandler(dev, logger)
	if err != nil {
		return err
	}
	srv.Handler = h

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Fatal("listen failed")
				}
			}()
			logger.With(zap.String("addr", srv.Addr)).Info("serving")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
	log *zap.Logger
}

func (s *Service) Command(name string, _ *Ack) error {
	s.log.With(zap.String("cmd", name)).Debug("command")

	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	case "restart":
		return s.dev.Restart()
	}

	return errors.Wrap(ErrUnknownCommand, name)
}

func (s *Service) Size(_ int, resp *SizeResponse) error {
	sz := s.dev.Size()
	resp.Width, resp.Height = sz.X, sz.Y
	return nil
}

func (s *Service) SetLight(light uint8, _ *Ack) error {
	return s.dev.SetLight(light)
}

func (s *Service) SetMirror(mirror bool, _ *Ack) error {
	return s.dev.SetMirror(mirror)
}

func (s *Service) SetRotate(req SetRotateRequest, _ *Ack) error {
	return s.dev.SetRotate(req.Landscape, req.Invert)
}

func (s *Service) DrawBitmap(req *DrawBitmapRequest, _ *Ack) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.DrawBitmap(req.PosX, req.PosY, img)
}
