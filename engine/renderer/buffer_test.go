package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
	"github.com/embergfx/ember/engine/gpu/sim"
)

func TestVertexTypeBitmasks(t *testing.T) {
	assert.Equal(t, gpu.Position32BitF, PositionVertex{}.VertexType())
	assert.Equal(t, gpu.Color8888|gpu.Position32BitF, ColorVertex{}.VertexType())
	assert.Equal(t, gpu.Texture32BitF|gpu.Position32BitF, TextureVertex{}.VertexType())
	assert.Equal(t, gpu.Texture32BitF|gpu.Color8888|gpu.Position32BitF, TextureColorVertex{}.VertexType())

	assert.Equal(t, gpu.Index8Bit, Index8(0).IndexType())
	assert.Equal(t, gpu.Index16Bit, Index16(0).IndexType())
}

func TestVertexSliceContract(t *testing.T) {
	verts := VertexSlice[PositionVertex]{{X: 1}, {Y: 2}}
	assert.Equal(t, 2, verts.Len())
	assert.Equal(t, gpu.Position32BitF, verts.VertexType())
	assert.NotNil(t, verts.Pointer())

	empty := VertexSlice[PositionVertex]{}
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Pointer())
}

func TestIndexedDrawCountComesFromIndexBuffer(t *testing.T) {
	ctx, device := newTestContext(t)

	quad := VertexSlice[PositionVertex]{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	defer frame.Close()
	device.ResetCommands()

	// Six indices over four vertices: count must be six.
	indices := IndexSlice[Index16]{0, 1, 2, 0, 2, 3}
	require.NoError(t, frame.DrawArrayIndexed(gpu.PrimitiveTriangles, quad, indices))

	// Empty index buffer: a zero-count no-op draw.
	require.NoError(t, frame.DrawArrayIndexed(gpu.PrimitiveTriangles, quad, IndexSlice[Index16]{}))

	// Out-of-range indices pass through unchecked.
	oob := IndexSlice[Index16]{0, 1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, frame.DrawArrayIndexed(gpu.PrimitiveTriangles, quad, oob))

	draws := device.CommandsByOp(sim.OpDrawArray)
	require.Len(t, draws, 3)
	assert.Equal(t, int32(6), draws[0].Count)
	assert.Equal(t, int32(0), draws[1].Count)
	assert.Equal(t, int32(8), draws[2].Count)

	// Indexed draws or the index format into the vertex bitmask.
	assert.Equal(t, gpu.Position32BitF|gpu.Index16Bit, draws[0].VType)
	assert.NotNil(t, draws[0].Indices)
}

func TestStagedVerticesAreCopied(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	defer frame.Close()

	source := []ColorVertex{
		{Color: RGB(255, 0, 0), X: 1},
		{Color: RGB(0, 255, 0), Y: 1},
	}
	staged, err := StageVertices(frame, source)
	require.NoError(t, err)

	assert.Equal(t, 2, staged.Len())
	assert.Equal(t, source, staged.Data())

	// The staged copy lives in the scratch region, not in the
	// caller's slice.
	source[0].X = 99
	assert.Equal(t, float32(1), staged.Data()[0].X)
}

func TestStageOnClosedFrame(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	frame.Close()

	_, err = StageVertices(frame, []PositionVertex{{X: 1}})
	assert.ErrorIs(t, err, core.ErrFrameClosed)
	_, err = StageIndices(frame, []Index16{0})
	assert.ErrorIs(t, err, core.ErrFrameClosed)
}

func TestTransientBufferUseAfterClosePanics(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)

	staged, err := StageVertices(frame, []PositionVertex{{X: 1}, {X: 2}})
	require.NoError(t, err)
	indices, err := StageIndices(frame, []Index8{0, 1})
	require.NoError(t, err)

	// Fine while the frame is open.
	assert.Equal(t, 2, staged.Len())
	assert.Equal(t, 2, indices.Len())

	frame.Close()

	// The backing scratch belongs to the next frame now; any read
	// must be rejected rather than returning reused bytes.
	assert.Panics(t, func() { staged.Len() })
	assert.Panics(t, func() { staged.Data() })
	assert.Panics(t, func() { staged.Pointer() })
	assert.Panics(t, func() { indices.Data() })
}

func TestTransientBufferDrawWithinFrame(t *testing.T) {
	ctx, device := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	defer frame.Close()
	device.ResetCommands()

	staged, err := StageVertices(frame, []ColorVertex{
		{Color: RGB(255, 0, 0)}, {Color: RGB(0, 255, 0)}, {Color: RGB(0, 0, 255)},
	})
	require.NoError(t, err)
	require.NoError(t, frame.DrawArray(gpu.PrimitiveTriangles, staged))

	draws := device.CommandsByOp(sim.OpDrawArray)
	require.Len(t, draws, 1)
	assert.Equal(t, int32(3), draws[0].Count)
	assert.Equal(t, gpu.Color8888|gpu.Position32BitF, draws[0].VType)
}

func TestEmptyStage(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	defer frame.Close()

	staged, err := StageVertices(frame, []PositionVertex{})
	require.NoError(t, err)
	assert.Equal(t, 0, staged.Len())
	assert.Nil(t, staged.Pointer())
}
