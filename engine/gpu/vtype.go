package gpu

// VertexType is the hardware format bitmask describing the in-memory
// layout of one vertex (or index) element. The GPU decodes the vertex
// stream with no other layout information, so the bitmask advertised
// for a buffer must match its element layout exactly; a mismatch is
// undefined behavior on the hardware, not a detectable error.
//
// Field encoding, low to high bits:
//
//	[1:0]   texture coordinate format
//	[4:2]   color format
//	[6:5]   normal format
//	[8:7]   position format
//	[10:9]  weight format
//	[12:11] index format
//	[16:14] weight count - 1
//	[20:18] vertex count - 1
//	[23]    2D transform (0 = 3D pipeline)
type VertexType uint32

const (
	TextureNone    VertexType = 0
	Texture8Bit    VertexType = 1 << 0
	Texture16Bit   VertexType = 2 << 0
	Texture32BitF  VertexType = 3 << 0
	ColorNone      VertexType = 0
	Color5650      VertexType = 4 << 2
	Color5551      VertexType = 5 << 2
	Color4444      VertexType = 6 << 2
	Color8888      VertexType = 7 << 2
	NormalNone     VertexType = 0
	Normal8Bit     VertexType = 1 << 5
	Normal16Bit    VertexType = 2 << 5
	Normal32BitF   VertexType = 3 << 5
	PositionNone   VertexType = 0
	Position8Bit   VertexType = 1 << 7
	Position16Bit  VertexType = 2 << 7
	Position32BitF VertexType = 3 << 7
	WeightNone     VertexType = 0
	Weight8Bit     VertexType = 1 << 9
	Weight16Bit    VertexType = 2 << 9
	Weight32BitF   VertexType = 3 << 9
	IndexNone      VertexType = 0
	Index8Bit      VertexType = 1 << 11
	Index16Bit     VertexType = 2 << 11
	Transform3D    VertexType = 0
	Transform2D    VertexType = 1 << 23
)
