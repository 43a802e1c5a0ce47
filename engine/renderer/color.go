package renderer

// Color32 is a 32-bit RGBA color with 8 bits per channel. Its field
// order matches the hardware's packed ABGR word on a little-endian
// machine, which lets it be embedded directly in vertex layouts that
// advertise the 8888 color format.
type Color32 struct {
	R, G, B, A uint8
}

// RGBA builds a color from explicit channel values.
func RGBA(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// RGB builds a fully opaque color.
func RGB(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 0xff}
}

// AsABGR packs the color into the byte order the hardware expects for
// clear and draw color operands. The packing is lossless; see
// ColorFromABGR.
func (c Color32) AsABGR() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// ColorFromABGR recovers the channel values from a packed hardware
// color word.
func ColorFromABGR(v uint32) Color32 {
	return Color32{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}
