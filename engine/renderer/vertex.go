package renderer

import "github.com/embergfx/ember/engine/gpu"

// Vertex is implemented by the closed set of vertex element types.
// Each type's VertexType bitmask is fixed at compile time and matches
// its memory layout field for field; the hardware decodes the vertex
// stream from the bitmask alone, so the pairing below is the whole
// layout contract.
type Vertex interface {
	VertexType() gpu.VertexType
}

// PositionVertex is a bare 3D position.
type PositionVertex struct {
	X, Y, Z float32
}

func (PositionVertex) VertexType() gpu.VertexType {
	return gpu.Position32BitF | gpu.Transform3D
}

// ColorVertex is a per-vertex 8888 color followed by a 3D position.
type ColorVertex struct {
	Color   Color32
	X, Y, Z float32
}

func (ColorVertex) VertexType() gpu.VertexType {
	return gpu.Color8888 | gpu.Position32BitF | gpu.Transform3D
}

// TextureVertex is a float UV pair followed by a 3D position.
type TextureVertex struct {
	U, V    float32
	X, Y, Z float32
}

func (TextureVertex) VertexType() gpu.VertexType {
	return gpu.Texture32BitF | gpu.Position32BitF | gpu.Transform3D
}

// TextureColorVertex carries UV, color and position.
type TextureColorVertex struct {
	U, V    float32
	Color   Color32
	X, Y, Z float32
}

func (TextureColorVertex) VertexType() gpu.VertexType {
	return gpu.Texture32BitF | gpu.Color8888 | gpu.Position32BitF | gpu.Transform3D
}
