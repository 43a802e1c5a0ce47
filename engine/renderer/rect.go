package renderer

// Rect is an axis-aligned screen rectangle. It is handed to the
// hardware verbatim; no clamping to the screen bounds happens here.
type Rect struct {
	X, Y, W, H int32
}

func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}
