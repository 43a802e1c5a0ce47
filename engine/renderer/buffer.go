package renderer

import (
	"unsafe"

	"github.com/embergfx/ember/engine/gpu"
)

// VertexBuffer is a contiguous sequence of typed vertex elements the
// hardware can read directly. Implementations advertise the format
// bitmask of their element type; Pointer must stay stable for the
// duration of any draw call it is passed to.
type VertexBuffer interface {
	Len() int
	VertexType() gpu.VertexType
	Pointer() unsafe.Pointer
}

// IndexBuffer is the index-element counterpart of VertexBuffer.
type IndexBuffer interface {
	Len() int
	IndexType() gpu.VertexType
	Pointer() unsafe.Pointer
}

// VertexSlice adapts a caller-owned slice into a persistent vertex
// buffer. The caller keeps ownership; the slice must not be moved or
// freed while a draw call referencing it is in flight.
type VertexSlice[V Vertex] []V

func (s VertexSlice[V]) Len() int {
	return len(s)
}

func (s VertexSlice[V]) VertexType() gpu.VertexType {
	var v V
	return v.VertexType()
}

func (s VertexSlice[V]) Pointer() unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// IndexSlice adapts a caller-owned slice into a persistent index
// buffer.
type IndexSlice[I Index] []I

func (s IndexSlice[I]) Len() int {
	return len(s)
}

func (s IndexSlice[I]) IndexType() gpu.VertexType {
	var i I
	return i.IndexType()
}

func (s IndexSlice[I]) Pointer() unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// TransientVertexBuffer is a non-owning view into the frame's scratch
// region. It is valid only while the frame that staged it is open:
// the scratch is carved out of the command-list arena and reclaimed
// when the next frame starts, so every access checks the owning
// frame and panics after it closes rather than reading reused bytes.
type TransientVertexBuffer[V Vertex] struct {
	frame *Frame
	data  []V
}

func (b *TransientVertexBuffer[V]) guard() {
	if b.frame.closed {
		panic("renderer: transient buffer used after its frame closed")
	}
}

func (b *TransientVertexBuffer[V]) Len() int {
	b.guard()
	return len(b.data)
}

func (b *TransientVertexBuffer[V]) VertexType() gpu.VertexType {
	var v V
	return v.VertexType()
}

func (b *TransientVertexBuffer[V]) Pointer() unsafe.Pointer {
	b.guard()
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}

// Data exposes the staged elements for inspection. Same lifetime rule
// as Pointer.
func (b *TransientVertexBuffer[V]) Data() []V {
	b.guard()
	return b.data
}

// TransientIndexBuffer is the index counterpart of
// TransientVertexBuffer.
type TransientIndexBuffer[I Index] struct {
	frame *Frame
	data  []I
}

func (b *TransientIndexBuffer[I]) guard() {
	if b.frame.closed {
		panic("renderer: transient buffer used after its frame closed")
	}
}

func (b *TransientIndexBuffer[I]) Len() int {
	b.guard()
	return len(b.data)
}

func (b *TransientIndexBuffer[I]) IndexType() gpu.VertexType {
	var i I
	return i.IndexType()
}

func (b *TransientIndexBuffer[I]) Pointer() unsafe.Pointer {
	b.guard()
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}

func (b *TransientIndexBuffer[I]) Data() []I {
	b.guard()
	return b.data
}

// StageVertices copies data into the open frame's scratch region and
// returns a transient view of the staged copy. The view dies with the
// frame.
func StageVertices[V Vertex](f *Frame, data []V) (*TransientVertexBuffer[V], error) {
	staged, err := stage(f, data)
	if err != nil {
		return nil, err
	}
	return &TransientVertexBuffer[V]{frame: f, data: staged}, nil
}

// StageIndices copies data into the open frame's scratch region and
// returns a transient view of the staged copy.
func StageIndices[I Index](f *Frame, data []I) (*TransientIndexBuffer[I], error) {
	staged, err := stage(f, data)
	if err != nil {
		return nil, err
	}
	return &TransientIndexBuffer[I]{frame: f, data: staged}, nil
}

func stage[T any](f *Frame, data []T) ([]T, error) {
	if err := f.guard(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	mem := f.ctx.driver.GetMemory(int32(size))
	staged := unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), len(data))
	copy(staged, data)
	return staged, nil
}
