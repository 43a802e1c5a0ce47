package gpu

import (
	"unsafe"
)

// Address is an opaque location inside the video-memory pool. It is
// produced by the video-memory allocator at init time and consumed
// verbatim by buffer-registration commands; the host never
// dereferences it.
type Address uintptr

// Driver is the fixed command vocabulary of the display-list GPU. It
// is the boundary between the safety layer and the silicon: every
// operation either appends to the currently open command list or
// manipulates the display engine directly, and none of them report
// errors — the hardware has no way to fail a well-formed command, and
// a malformed one simply crashes the machine. All correctness
// obligations (one open list at a time, close sequence ordering,
// scratch lifetime) are owed by the caller.
//
// Implementations execute asynchronously relative to the host. The
// only blocking entry points are Sync with SyncWait behavior and
// WaitVblankStart.
type Driver interface {
	// Init performs one-time hardware bring-up. Called exactly once
	// per process before any other operation.
	Init()

	// Start opens command-list recording into the given arena. The
	// hardware has a single list cursor: calling Start while a list
	// is open corrupts it.
	Start(list []uint32)
	// Finish terminates recording and submits the list for execution.
	Finish()
	// Sync waits on list execution. With SyncFinish/SyncWait it blocks
	// until every submitted command has retired.
	Sync(mode SyncMode, behavior SyncBehavior)

	// WaitVblankStart blocks until the display's next vertical-blank
	// period begins.
	WaitVblankStart()
	// SwapBuffers exchanges the draw and display framebuffers. Only
	// meaningful during vblank; calling it elsewhere tears.
	SwapBuffers()
	// Display enables or disables the display engine.
	Display(enable bool)

	// DrawBuffer registers the render target and its stride.
	DrawBuffer(format PixelFormat, addr Address, stride int32)
	// DispBuffer registers the displayed framebuffer.
	DispBuffer(width, height int32, addr Address, stride int32)
	// DepthBuffer registers the depth target.
	DepthBuffer(addr Address, stride int32)

	Offset(x, y uint32)
	Viewport(cx, cy, width, height int32)
	DepthRange(near, far int32)
	Scissor(x, y, width, height int32)
	Enable(state State)

	ClearColor(color uint32)
	ClearDepth(depth uint32)
	Clear(bits ClearBuffer)

	Color(color uint32)
	ShadeModel(model ShadingModel)
	TexFunc(effect TextureEffect, component TextureColorComponent)

	// DrawArray issues a draw of count elements. indices may be nil
	// for non-indexed draws. Pointers are raw because the hardware
	// reads the element streams directly from memory; the advertised
	// vtype bitmask is the only layout contract.
	DrawArray(prim Primitive, vtype VertexType, count int32, indices, vertices unsafe.Pointer)

	// GetMemory carves size bytes of scratch out of the open command
	// list's arena. The returned memory is valid until the next Start,
	// which reclaims the whole scratch region.
	GetMemory(size int32) []byte
}
