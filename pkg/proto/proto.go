package proto

import (
	"image"
)

// Control is implemented by every panel backend.
type Control interface {
	Startup() error
	Shutdown() error
	Restart() error

	// Size reports the drawable area, taking the current rotation into account.
	Size() image.Point

	SetLight(light uint8) error
	SetMirror(mirror bool) error
	SetRotate(landscape bool, invert bool) error

	DrawBitmap(posX uint16, posY uint16, image image.Image) error
}
