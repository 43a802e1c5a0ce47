package renderer

import "github.com/embergfx/ember/engine/gpu"

// Index is implemented by the closed set of index element types. The
// index format bits are or-ed into the draw call's vertex bitmask.
type Index interface {
	IndexType() gpu.VertexType
}

// Index8 is an 8-bit vertex index.
type Index8 uint8

func (Index8) IndexType() gpu.VertexType {
	return gpu.Index8Bit
}

// Index16 is a 16-bit vertex index.
type Index16 uint16

func (Index16) IndexType() gpu.VertexType {
	return gpu.Index16Bit
}
