package remote

// Ack carries no data; gob refuses structs without exported fields.
type Ack struct {
	OK bool
}

type SetRotateRequest struct {
	Landscape bool
	Invert    bool
}

type DrawBitmapRequest struct {
	PosX  uint16
	PosY  uint16
	Image []byte
}

type SizeResponse struct {
	Width  int
	Height int
}
