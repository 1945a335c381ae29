package device

import (
	"strings"

	"go.uber.org/zap"

	"maixlcd/pkg/device/inch35"
	"maixlcd/pkg/device/remote"
	"maixlcd/pkg/device/virtual"
	"maixlcd/pkg/proto"
)

const Virtual = "virtual"

// Open picks a backend by name: "virtual" (or empty) for the in-memory panel,
// "host:port" for a remote one, anything else as a serial port name.
// width and height only apply to the virtual panel.
func Open(name string, width, height int, logger *zap.Logger) (proto.Control, error) {
	switch {
	case name == "" || name == Virtual:
		return virtual.New(width, height, logger), nil
	case strings.Contains(name, ":"):
		return remote.New(name)
	default:
		return inch35.New(proto.NewSerial(name), logger)
	}
}
