package virtual

import (
	"image"
	"image/draw"
	"sync"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"maixlcd/pkg/proto"
)

// Frame is one DrawBitmap call as it arrived.
type Frame struct {
	ID  string
	At  image.Point
	Img *image.NRGBA
}

func New(width, height int, logger *zap.Logger) *Panel {
	return &Panel{
		l:      logger.With(zap.String("device", "virtual")),
		size:   image.Pt(width, height),
		screen: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Panel is an in-memory screen. It logs every call and keeps what was drawn.
type Panel struct {
	mu     sync.Mutex
	l      *zap.Logger
	size   image.Point
	mirror bool
	light  uint8
	screen *image.NRGBA
	calls  []string
	frames []Frame
}

var _ proto.Control = (*Panel)(nil)

func (p *Panel) record(call string) {
	p.calls = append(p.calls, call)
}

func (p *Panel) Startup() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("startup")
	p.l.Info("startup")
	return nil
}

func (p *Panel) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("shutdown")
	p.l.Info("shutdown")
	return nil
}

func (p *Panel) Restart() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("restart")
	p.l.Info("restart")
	return nil
}

func (p *Panel) Size() image.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("size")
	return p.size
}

func (p *Panel) SetLight(light uint8) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("set-light")
	p.light = light
	p.l.With(zap.Uint8("light", light)).Info("set-light")
	return nil
}

func (p *Panel) SetMirror(mirror bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("set-mirror")
	p.mirror = mirror
	p.l.With(zap.Bool("mirror", mirror)).Info("set-mirror")
	return nil
}

func (p *Panel) SetRotate(landscape bool, invert bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("set-rotate")
	if landscape != (p.size.X > p.size.Y) {
		p.size.X, p.size.Y = p.size.Y, p.size.X
		p.screen = image.NewNRGBA(image.Rect(0, 0, p.size.X, p.size.Y))
	}
	p.l.With(zap.Bool("landscape", landscape), zap.Bool("invert", invert)).Info("set-rotate")
	return nil
}

func (p *Panel) DrawBitmap(posX uint16, posY uint16, img image.Image) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("draw-bitmap")

	b := img.Bounds()
	cp := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(cp, cp.Bounds(), img, b.Min, draw.Src)

	at := image.Pt(int(posX), int(posY))
	draw.Draw(p.screen, cp.Bounds().Add(at), cp, image.Point{}, draw.Src)

	f := Frame{ID: xid.New().String(), At: at, Img: cp}
	p.frames = append(p.frames, f)

	p.l.With(
		zap.String("frame", f.ID),
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Info("draw-bitmap")
	return nil
}

// Calls lists the method calls in arrival order.
func (p *Panel) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *Panel) Frames() []Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Frame(nil), p.frames...)
}

// Screen returns a copy of everything drawn so far.
func (p *Panel) Screen() *image.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := image.NewNRGBA(p.screen.Rect)
	copy(cp.Pix, p.screen.Pix)
	return cp
}

func (p *Panel) Mirrored() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mirror
}
