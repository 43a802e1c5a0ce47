package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
	"github.com/embergfx/ember/engine/gpu/sim"
)

func newTestContext(t *testing.T) (*GraphicsContext, *sim.Device) {
	t.Helper()
	device := sim.NewDevice()
	ctx, err := New(device, device)
	require.NoError(t, err)
	return ctx, device
}

func opcodes(cmds []sim.Command) []sim.Opcode {
	ops := make([]sim.Opcode, len(cmds))
	for i, cmd := range cmds {
		ops[i] = cmd.Op
	}
	return ops
}

func TestInitSequence(t *testing.T) {
	ctx, device := newTestContext(t)

	assert.Equal(t, []sim.Opcode{
		sim.OpInit,
		sim.OpStart,
		sim.OpDrawBuffer,
		sim.OpDispBuffer,
		sim.OpDepthBuffer,
		sim.OpOffset,
		sim.OpViewport,
		sim.OpDepthRange,
		sim.OpScissor,
		sim.OpEnable,
		sim.OpFinish,
		sim.OpSync,
		sim.OpWaitVblank,
		sim.OpDisplay,
	}, opcodes(device.Commands()))

	assert.True(t, device.DisplayEnabled())
	assert.Len(t, device.Regions(), 3)
	assert.NotEqual(t, ctx.FrontBuffer(), ctx.BackBuffer())

	// Color regions share a format distinct from the depth region.
	regions := device.Regions()
	assert.Equal(t, gpu.PixelFormat8888, regions[0].Format)
	assert.Equal(t, gpu.PixelFormat8888, regions[1].Format)
	assert.Equal(t, gpu.PixelFormat4444, regions[2].Format)
}

func TestInitOutOfVideoMemory(t *testing.T) {
	// A pool this small cannot hold even the first framebuffer.
	device := sim.NewDevice(sim.WithVRAMSize(1024))
	ctx, err := New(device, device)
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, core.ErrOutOfVideoMemory)
}

func TestFrameExclusivity(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)

	second, err := ctx.StartFrame()
	assert.Nil(t, second)
	assert.ErrorIs(t, err, core.ErrFrameAlreadyOpen)

	frame.Close()

	third, err := ctx.StartFrame()
	require.NoError(t, err)
	third.Close()
}

func TestEndToEndFrame(t *testing.T) {
	ctx, device := newTestContext(t)
	device.ResetCommands()

	frame, err := ctx.StartFrame()
	require.NoError(t, err)

	black := RGB(0, 0, 0)
	require.NoError(t, frame.ClearColorDepth(black, 0xFFFF))

	triangle := VertexSlice[ColorVertex]{
		{Color: RGB(255, 0, 0), X: 0, Y: 1, Z: 0},
		{Color: RGB(0, 255, 0), X: -1, Y: -1, Z: 0},
		{Color: RGB(0, 0, 255), X: 1, Y: -1, Z: 0},
	}
	require.NoError(t, frame.DrawArray(gpu.PrimitiveTriangles, triangle))

	frame.Close()

	assert.Equal(t, []sim.Opcode{
		sim.OpStart,
		sim.OpClearColor,
		sim.OpClearDepth,
		sim.OpClear,
		sim.OpDrawArray,
		sim.OpFinish,
		sim.OpSync,
		sim.OpWaitVblank,
		sim.OpSwapBuffers,
	}, opcodes(device.Commands()))

	clears := device.CommandsByOp(sim.OpClear)
	require.Len(t, clears, 1)
	assert.Equal(t, gpu.ClearColorBuffer|gpu.ClearDepthBuffer, clears[0].Bits)

	draws := device.CommandsByOp(sim.OpDrawArray)
	require.Len(t, draws, 1)
	assert.Equal(t, int32(3), draws[0].Count)
	assert.Equal(t, gpu.PrimitiveTriangles, draws[0].Prim)
	assert.Nil(t, draws[0].Indices)
}

func TestCloseIsIdempotent(t *testing.T) {
	ctx, device := newTestContext(t)
	device.ResetCommands()

	frame, err := ctx.StartFrame()
	require.NoError(t, err)

	frame.Close()
	frame.Close()
	frame.Close()

	assert.Len(t, device.CommandsByOp(sim.OpFinish), 1)
	assert.Len(t, device.CommandsByOp(sim.OpSync), 1)
	assert.Len(t, device.CommandsByOp(sim.OpWaitVblank), 1)
	assert.Len(t, device.CommandsByOp(sim.OpSwapBuffers), 1)
}

func TestCloseRunsOnPanicUnwind(t *testing.T) {
	ctx, device := newTestContext(t)
	device.ResetCommands()

	func() {
		defer func() {
			assert.NotNil(t, recover())
		}()
		frame, err := ctx.StartFrame()
		require.NoError(t, err)
		defer frame.Close()
		panic("mid-frame failure")
	}()

	// The deferred Close ran the full sequence and released the
	// context.
	assert.Len(t, device.CommandsByOp(sim.OpSwapBuffers), 1)
	assert.False(t, device.ListOpen())

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	frame.Close()
}

func TestFrameUseAfterClose(t *testing.T) {
	ctx, _ := newTestContext(t)

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	frame.Close()

	assert.ErrorIs(t, frame.ClearColor(RGB(1, 2, 3)), core.ErrFrameClosed)
	assert.ErrorIs(t, frame.ClearDepth(0), core.ErrFrameClosed)
	assert.ErrorIs(t, frame.SetColor(RGB(1, 2, 3)), core.ErrFrameClosed)
	assert.ErrorIs(t, frame.SetScissor(NewRect(0, 0, 1, 1)), core.ErrFrameClosed)
	assert.ErrorIs(t, frame.SetShadingModel(gpu.ShadingSmooth), core.ErrFrameClosed)
	assert.ErrorIs(t, frame.DrawArray(gpu.PrimitivePoints, VertexSlice[PositionVertex]{}), core.ErrFrameClosed)
}

func TestBufferSwapAlternation(t *testing.T) {
	ctx, device := newTestContext(t)

	first := device.DisplayBufferAddr()
	firstFront := ctx.FrontBuffer()

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	frame.Close()

	afterOne := device.DisplayBufferAddr()
	assert.NotEqual(t, first, afterOne)
	assert.NotEqual(t, firstFront, ctx.FrontBuffer())

	frame, err = ctx.StartFrame()
	require.NoError(t, err)
	frame.Close()

	assert.Equal(t, first, device.DisplayBufferAddr())
	assert.Equal(t, firstFront, ctx.FrontBuffer())
}

func TestStateSettingCommands(t *testing.T) {
	ctx, device := newTestContext(t)
	device.ResetCommands()

	frame, err := ctx.StartFrame()
	require.NoError(t, err)
	defer frame.Close()

	require.NoError(t, frame.SetColor(RGBA(1, 2, 3, 4)))
	require.NoError(t, frame.SetScissor(NewRect(10, 20, 100, 50)))
	require.NoError(t, frame.SetShadingModel(gpu.ShadingSmooth))
	require.NoError(t, frame.SetTextureFunction(gpu.TextureEffectReplace, gpu.TextureColorComponentRGBA))

	colors := device.CommandsByOp(sim.OpColor)
	require.Len(t, colors, 1)
	assert.Equal(t, RGBA(1, 2, 3, 4).AsABGR(), colors[0].Value)

	scissors := device.CommandsByOp(sim.OpScissor)
	require.Len(t, scissors, 1)
	assert.Equal(t, int32(10), scissors[0].X)
	assert.Equal(t, int32(50), scissors[0].H)

	models := device.CommandsByOp(sim.OpShadeModel)
	require.Len(t, models, 1)
	assert.Equal(t, gpu.ShadingSmooth, models[0].Model)

	texFuncs := device.CommandsByOp(sim.OpTexFunc)
	require.Len(t, texFuncs, 1)
	assert.Equal(t, gpu.TextureEffectReplace, texFuncs[0].Effect)
}
