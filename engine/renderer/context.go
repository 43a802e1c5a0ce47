// Package renderer is the safety layer over the display-list GPU. It
// owns the framebuffer regions and the command-list arena, and it
// encodes the hardware protocol — init once, then per frame:
// start, record, finish, sync, vblank, swap — as a scoped Frame handle
// so the ordering holds on every exit path.
package renderer

import (
	"fmt"

	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
	"github.com/embergfx/ember/engine/gpu/vram"
)

// listWords sizes the shared command-list arena. Per-frame scratch is
// carved out of the same arena by GetMemory.
const listWords = 0x40000

// GraphicsContext owns the hardware session: the two color
// framebuffers, the depth buffer and the command-list arena. Exactly
// one should exist per process; it is never torn down, the hardware
// session ends with the process.
type GraphicsContext struct {
	driver gpu.Driver

	// colorFront is scanned out by the display, colorBack is the
	// render target. The roles swap at every frame close. Both share
	// the depth buffer's width and stride.
	colorFront gpu.Address
	colorBack  gpu.Address
	depth      gpu.Address

	list []uint32

	// frameOpen guards the hardware's single command-list cursor. Go
	// cannot make a second StartFrame a compile error the way an
	// exclusive borrow would, so reentry is reported instead.
	frameOpen bool
}

// New allocates the three framebuffer regions and performs the
// one-time pipeline bring-up, leaving the display enabled. The three
// allocations are fixed-size with no fallback layout: any allocation
// failure aborts initialization.
func New(driver gpu.Driver, allocator vram.Allocator) (*GraphicsContext, error) {
	drawBuf, err := allocator.AllocTexturePixels(gpu.BufferWidth, gpu.ScreenHeight, gpu.PixelFormat8888)
	if err != nil {
		return nil, fmt.Errorf("draw framebuffer: %w", err)
	}
	dispBuf, err := allocator.AllocTexturePixels(gpu.BufferWidth, gpu.ScreenHeight, gpu.PixelFormat8888)
	if err != nil {
		return nil, fmt.Errorf("display framebuffer: %w", err)
	}
	depthBuf, err := allocator.AllocTexturePixels(gpu.BufferWidth, gpu.ScreenHeight, gpu.PixelFormat4444)
	if err != nil {
		return nil, fmt.Errorf("depth buffer: %w", err)
	}

	ctx := &GraphicsContext{
		driver:     driver,
		colorBack:  drawBuf,
		colorFront: dispBuf,
		depth:      depthBuf,
		list:       make([]uint32, listWords),
	}

	driver.Init()
	driver.Start(ctx.list)
	driver.DrawBuffer(gpu.PixelFormat8888, drawBuf, gpu.BufferWidth)
	driver.DispBuffer(gpu.ScreenWidth, gpu.ScreenHeight, dispBuf, gpu.BufferWidth)
	driver.DepthBuffer(depthBuf, gpu.BufferWidth)
	driver.Offset(2048-gpu.ScreenWidth/2, 2048-gpu.ScreenHeight/2)
	driver.Viewport(2048, 2048, gpu.ScreenWidth, gpu.ScreenHeight)
	driver.DepthRange(65535, 0)
	driver.Scissor(0, 0, gpu.ScreenWidth, gpu.ScreenHeight)
	driver.Enable(gpu.StateScissorTest)
	driver.Finish()
	driver.Sync(gpu.SyncFinish, gpu.SyncWait)
	driver.WaitVblankStart()
	driver.Display(true)

	core.LogInfo("graphics context initialized: draw=%#x disp=%#x depth=%#x", drawBuf, dispBuf, depthBuf)
	return ctx, nil
}

// StartFrame opens a command-list recording session and returns its
// exclusive Frame handle. At most one frame may be open at a time;
// starting a second one before closing the first returns
// core.ErrFrameAlreadyOpen without touching the hardware.
func (c *GraphicsContext) StartFrame() (*Frame, error) {
	if c.frameOpen {
		err := fmt.Errorf("start frame: %w", core.ErrFrameAlreadyOpen)
		core.LogError(err.Error())
		return nil, err
	}
	c.frameOpen = true
	c.driver.Start(c.list)
	return &Frame{ctx: c}, nil
}

// FrontBuffer returns the region currently presented by the display.
func (c *GraphicsContext) FrontBuffer() gpu.Address {
	return c.colorFront
}

// BackBuffer returns the region currently rendered into.
func (c *GraphicsContext) BackBuffer() gpu.Address {
	return c.colorBack
}
