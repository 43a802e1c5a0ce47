package renderer

import (
	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
)

// Frame is one open command-list recording session. It is the only
// handle through which drawing happens, and closing it is the only
// point where the calling goroutine blocks: the close sequence
// finishes the list, waits for the hardware to retire it, waits for
// vertical blank and swaps the framebuffers, in that order, exactly
// once.
//
// Callers should pair every StartFrame with a deferred Close so the
// sequence also runs on early return or panic unwind:
//
//	frame, err := ctx.StartFrame()
//	if err != nil {
//		return err
//	}
//	defer frame.Close()
//
// Close is idempotent, so an explicit mid-scope Close followed by the
// deferred one is fine; the second call is a no-op.
type Frame struct {
	ctx    *GraphicsContext
	closed bool
}

func (f *Frame) guard() error {
	if f.closed {
		return core.ErrFrameClosed
	}
	return nil
}

// Close runs the four-step close sequence — finish recording, wait
// for command completion, wait for vertical blank, swap buffers —
// then releases the context for the next frame. Every transient
// buffer staged by this frame is dead once Close returns. Calling
// Close again does nothing.
func (f *Frame) Close() {
	if f.closed {
		return
	}
	f.closed = true
	d := f.ctx.driver
	d.Finish()
	d.Sync(gpu.SyncFinish, gpu.SyncWait)
	d.WaitVblankStart()
	d.SwapBuffers()
	f.ctx.colorFront, f.ctx.colorBack = f.ctx.colorBack, f.ctx.colorFront
	f.ctx.frameOpen = false
}

// ClearColor clears the color buffer to the given color.
func (f *Frame) ClearColor(color Color32) error {
	if err := f.guard(); err != nil {
		return err
	}
	d := f.ctx.driver
	d.ClearColor(color.AsABGR())
	d.Clear(gpu.ClearColorBuffer)
	return nil
}

// ClearDepth clears the depth buffer to the given depth value.
func (f *Frame) ClearDepth(depth uint32) error {
	if err := f.guard(); err != nil {
		return err
	}
	d := f.ctx.driver
	d.ClearDepth(depth)
	d.Clear(gpu.ClearDepthBuffer)
	return nil
}

// ClearColorDepth clears color and depth buffers in a single clear
// command.
func (f *Frame) ClearColorDepth(color Color32, depth uint32) error {
	if err := f.guard(); err != nil {
		return err
	}
	d := f.ctx.driver
	d.ClearColor(color.AsABGR())
	d.ClearDepth(depth)
	d.Clear(gpu.ClearColorBuffer | gpu.ClearDepthBuffer)
	return nil
}

// SetColor sets the constant vertex color used by layouts without a
// per-vertex color field.
func (f *Frame) SetColor(color Color32) error {
	if err := f.guard(); err != nil {
		return err
	}
	f.ctx.driver.Color(color.AsABGR())
	return nil
}

// SetScissor restricts rendering to the given rectangle. Bounds are
// passed to the hardware verbatim.
func (f *Frame) SetScissor(scissor Rect) error {
	if err := f.guard(); err != nil {
		return err
	}
	f.ctx.driver.Scissor(scissor.X, scissor.Y, scissor.W, scissor.H)
	return nil
}

// SetShadingModel selects flat or smooth shading. Observed to affect
// only the current frame.
func (f *Frame) SetShadingModel(model gpu.ShadingModel) error {
	if err := f.guard(); err != nil {
		return err
	}
	f.ctx.driver.ShadeModel(model)
	return nil
}

// SetTextureFunction sets how texels combine with the fragment color.
// Unlike the shading model, this setting persists into subsequent
// frames: the hardware keeps it until something overwrites it. The
// two settings scope differently and no unifying rule exists; callers
// that need a known texture function must set it every frame.
func (f *Frame) SetTextureFunction(effect gpu.TextureEffect, component gpu.TextureColorComponent) error {
	if err := f.guard(); err != nil {
		return err
	}
	f.ctx.driver.TexFunc(effect, component)
	return nil
}

// DrawArray issues a non-indexed draw of every element in the vertex
// buffer.
func (f *Frame) DrawArray(prim gpu.Primitive, vertices VertexBuffer) error {
	if err := f.guard(); err != nil {
		return err
	}
	f.ctx.driver.DrawArray(prim, vertices.VertexType(), int32(vertices.Len()), nil, vertices.Pointer())
	return nil
}

// DrawArrayIndexed issues an indexed draw. The element count comes
// from the INDEX buffer, never the vertex buffer: indices may address
// any subset or repetition of the vertices. Index values are not
// range-checked here; an index past the end of the vertex buffer goes
// to the hardware as-is and produces undefined results.
func (f *Frame) DrawArrayIndexed(prim gpu.Primitive, vertices VertexBuffer, indices IndexBuffer) error {
	if err := f.guard(); err != nil {
		return err
	}
	vtype := vertices.VertexType() | indices.IndexType()
	f.ctx.driver.DrawArray(prim, vtype, int32(indices.Len()), indices.Pointer(), vertices.Pointer())
	return nil
}
