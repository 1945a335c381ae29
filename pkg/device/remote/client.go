package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"maixlcd/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

// Client forwards every call to a Service over HTTP.
type Client struct {
	rpc  *rpc.Client
	size image.Point
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", &Ack{})
}

func (c *Client) Shutdown() error {
	err := c.rpc.Call("Service.Command", "shutdown", &Ack{})
	if cerr := c.rpc.Close(); err == nil {
		err = cerr
	}
	return err
}

func (c *Client) Restart() error {
	return c.rpc.Call("Service.Command", "restart", &Ack{})
}

// Size is zero when the server cannot be reached.
func (c *Client) Size() image.Point {
	var resp SizeResponse
	if err := c.rpc.Call("Service.Size", 0, &resp); err != nil {
		return c.size
	}
	c.size = image.Pt(resp.Width, resp.Height)
	return c.size
}

func (c *Client) SetLight(light uint8) error {
	return c.rpc.Call("Service.SetLight", light, &Ack{})
}

func (c *Client) SetMirror(mirror bool) error {
	return c.rpc.Call("Service.SetMirror", mirror, &Ack{})
}

func (c *Client) SetRotate(landscape bool, invert bool) error {
	return c.rpc.Call("Service.SetRotate", SetRotateRequest{
		Landscape: landscape,
		Invert:    invert,
	}, &Ack{})
}

func (c *Client) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return err
	}

	return c.rpc.Call("Service.DrawBitmap", &DrawBitmapRequest{
		PosX:  posX,
		PosY:  posY,
		Image: buf.Bytes(),
	}, &Ack{})
}
