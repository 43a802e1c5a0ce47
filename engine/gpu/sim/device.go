// Package sim implements the driver vocabulary against an in-process
// model of the display-list GPU. It records every issued command for
// inspection, owns a real scratch arena so transient-memory reuse is
// observable, and panics on the protocol violations that crash the
// real silicon. It doubles as the video-memory allocator of the
// simulated platform.
package sim

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/google/uuid"

	"github.com/embergfx/ember/engine/containers"
	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
)

const (
	// DefaultVRAMSize mirrors the real platform's 2 MiB video-memory pool.
	DefaultVRAMSize uint32 = 0x200000
	// pendingListCapacity bounds the hardware FIFO of finished,
	// not-yet-retired command lists.
	pendingListCapacity = 16
)

// Region is one allocation out of the simulated video-memory pool.
type Region struct {
	ID     uuid.UUID
	Base   gpu.Address
	Size   uint32
	Format gpu.PixelFormat
}

type submittedList struct {
	words int
}

// Device simulates the GPU and its video memory. The zero value is
// not usable; construct with NewDevice.
type Device struct {
	commands []Command

	listOpen   bool
	list       []uint32
	listCursor int

	pending *containers.RingQueue[submittedList]

	vramSize uint32
	vramUsed uint32
	regions  []Region

	drawAddr    gpu.Address
	displayAddr gpu.Address
	displayOn   bool

	vblanks        uint64
	vblankInterval time.Duration
	lastVblank     time.Time

	initialized bool
}

type Option func(*Device)

// WithVRAMSize overrides the simulated video-memory pool size.
func WithVRAMSize(size uint32) Option {
	return func(d *Device) {
		d.vramSize = size
	}
}

// WithVblankInterval makes WaitVblankStart pace the caller at the
// given period, the way the real display does at ~60 Hz. Zero (the
// default) makes vblank waits return immediately, which is what tests
// want.
func WithVblankInterval(interval time.Duration) Option {
	return func(d *Device) {
		d.vblankInterval = interval
	}
}

func NewDevice(options ...Option) *Device {
	d := &Device{
		vramSize: DefaultVRAMSize,
		pending:  containers.NewRingQueue[submittedList](pendingListCapacity),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// AllocTexturePixels implements vram.Allocator over the simulated
// pool. Allocations are bump-style and permanent.
func (d *Device) AllocTexturePixels(width, height uint32, format gpu.PixelFormat) (gpu.Address, error) {
	size := width * height * format.BytesPerPixel()
	if d.vramUsed+size > d.vramSize {
		err := fmt.Errorf("cannot allocate %d bytes (%d of %d in use): %w", size, d.vramUsed, d.vramSize, core.ErrOutOfVideoMemory)
		core.LogError(err.Error())
		return 0, err
	}
	region := Region{
		ID:     uuid.New(),
		Base:   gpu.Address(d.vramUsed),
		Size:   size,
		Format: format,
	}
	d.vramUsed += size
	d.regions = append(d.regions, region)
	core.LogDebug("vram: allocated region %s base=%#x size=%d format=%d", region.ID, region.Base, region.Size, region.Format)
	return region.Base, nil
}

func (d *Device) record(cmd Command) {
	d.commands = append(d.commands, cmd)
}

// requireOpen models the silicon: list-append operations without an
// open command list scribble over undefined memory and crash.
func (d *Device) requireOpen(op Opcode) {
	if !d.listOpen {
		panic(fmt.Sprintf("sim: %s issued with no open command list", op))
	}
}

// advance consumes words of the command-list arena, the way each
// appended command does on real hardware.
func (d *Device) advance(words int) int {
	if d.listCursor+words > len(d.list) {
		panic(fmt.Sprintf("sim: command list arena overflow (%d of %d words used)", d.listCursor, len(d.list)))
	}
	at := d.listCursor
	d.listCursor += words
	return at
}

func (d *Device) Init() {
	d.initialized = true
	d.record(Command{Op: OpInit})
}

func (d *Device) Start(list []uint32) {
	if !d.initialized {
		panic("sim: Start before Init")
	}
	if d.listOpen {
		panic("sim: Start while a command list is open")
	}
	d.listOpen = true
	d.list = list
	// Reclaims the scratch carved from the previous list.
	d.listCursor = 0
	d.record(Command{Op: OpStart})
}

func (d *Device) Finish() {
	d.requireOpen(OpFinish)
	d.listOpen = false
	if err := d.pending.Enqueue(submittedList{words: d.listCursor}); err != nil {
		panic("sim: pending list FIFO overflow")
	}
	d.record(Command{Op: OpFinish})
}

func (d *Device) Sync(mode gpu.SyncMode, behavior gpu.SyncBehavior) {
	// Retire every submitted list, the blocking wait of the close
	// sequence.
	for !d.pending.IsEmpty() {
		if _, err := d.pending.Dequeue(); err != nil {
			break
		}
	}
	d.record(Command{Op: OpSync, Mode: mode, Behavior: behavior})
}

func (d *Device) WaitVblankStart() {
	if d.vblankInterval > 0 {
		next := d.lastVblank.Add(d.vblankInterval)
		if now := time.Now(); now.Before(next) {
			time.Sleep(next.Sub(now))
		}
		d.lastVblank = time.Now()
	}
	d.vblanks++
	d.record(Command{Op: OpWaitVblank})
}

func (d *Device) SwapBuffers() {
	d.drawAddr, d.displayAddr = d.displayAddr, d.drawAddr
	d.record(Command{Op: OpSwapBuffers})
}

func (d *Device) Display(enable bool) {
	d.displayOn = enable
	d.record(Command{Op: OpDisplay, Enabled: enable})
}

func (d *Device) DrawBuffer(format gpu.PixelFormat, addr gpu.Address, stride int32) {
	d.requireOpen(OpDrawBuffer)
	d.advance(1)
	d.drawAddr = addr
	d.record(Command{Op: OpDrawBuffer, Format: format, Addr: addr, Stride: stride})
}

func (d *Device) DispBuffer(width, height int32, addr gpu.Address, stride int32) {
	d.requireOpen(OpDispBuffer)
	d.advance(1)
	d.displayAddr = addr
	d.record(Command{Op: OpDispBuffer, W: width, H: height, Addr: addr, Stride: stride})
}

func (d *Device) DepthBuffer(addr gpu.Address, stride int32) {
	d.requireOpen(OpDepthBuffer)
	d.advance(1)
	d.record(Command{Op: OpDepthBuffer, Addr: addr, Stride: stride})
}

func (d *Device) Offset(x, y uint32) {
	d.requireOpen(OpOffset)
	d.advance(1)
	d.record(Command{Op: OpOffset, X: int32(x), Y: int32(y)})
}

func (d *Device) Viewport(cx, cy, width, height int32) {
	d.requireOpen(OpViewport)
	d.advance(1)
	d.record(Command{Op: OpViewport, X: cx, Y: cy, W: width, H: height})
}

func (d *Device) DepthRange(near, far int32) {
	d.requireOpen(OpDepthRange)
	d.advance(1)
	d.record(Command{Op: OpDepthRange, X: near, Y: far})
}

func (d *Device) Scissor(x, y, width, height int32) {
	d.requireOpen(OpScissor)
	d.advance(1)
	d.record(Command{Op: OpScissor, X: x, Y: y, W: width, H: height})
}

func (d *Device) Enable(state gpu.State) {
	d.requireOpen(OpEnable)
	d.advance(1)
	d.record(Command{Op: OpEnable, State: state})
}

func (d *Device) ClearColor(color uint32) {
	d.requireOpen(OpClearColor)
	d.advance(1)
	d.record(Command{Op: OpClearColor, Value: color})
}

func (d *Device) ClearDepth(depth uint32) {
	d.requireOpen(OpClearDepth)
	d.advance(1)
	d.record(Command{Op: OpClearDepth, Value: depth})
}

func (d *Device) Clear(bits gpu.ClearBuffer) {
	d.requireOpen(OpClear)
	d.advance(1)
	d.record(Command{Op: OpClear, Bits: bits})
}

func (d *Device) Color(color uint32) {
	d.requireOpen(OpColor)
	d.advance(1)
	d.record(Command{Op: OpColor, Value: color})
}

func (d *Device) ShadeModel(model gpu.ShadingModel) {
	d.requireOpen(OpShadeModel)
	d.advance(1)
	d.record(Command{Op: OpShadeModel, Model: model})
}

func (d *Device) TexFunc(effect gpu.TextureEffect, component gpu.TextureColorComponent) {
	d.requireOpen(OpTexFunc)
	d.advance(1)
	d.record(Command{Op: OpTexFunc, Effect: effect, Component: component})
}

func (d *Device) DrawArray(prim gpu.Primitive, vtype gpu.VertexType, count int32, indices, vertices unsafe.Pointer) {
	d.requireOpen(OpDrawArray)
	d.advance(1)
	d.record(Command{
		Op:       OpDrawArray,
		Prim:     prim,
		VType:    vtype,
		Count:    count,
		Indices:  indices,
		Vertices: vertices,
	})
}

func (d *Device) GetMemory(size int32) []byte {
	d.requireOpen(OpGetMemory)
	if size <= 0 {
		d.record(Command{Op: OpGetMemory, Value: 0})
		return nil
	}
	// Round up to whole words and carve out of the list arena, so the
	// scratch is genuinely overwritten once a later Start reclaims it.
	words := (int(size) + 3) / 4
	at := d.advance(words)
	d.record(Command{Op: OpGetMemory, Value: uint32(size)})
	return unsafe.Slice((*byte)(unsafe.Pointer(&d.list[at])), size)
}

// Commands returns every driver call recorded so far, in issue order.
func (d *Device) Commands() []Command {
	return d.commands
}

// CommandsByOp filters the recorded stream to one opcode.
func (d *Device) CommandsByOp(op Opcode) []Command {
	var out []Command
	for _, cmd := range d.commands {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}

// ResetCommands discards the recorded stream without touching device
// state. Useful for scoping assertions to a single frame.
func (d *Device) ResetCommands() {
	d.commands = nil
}

// DisplayBufferAddr returns the region currently scanned out to the
// display.
func (d *Device) DisplayBufferAddr() gpu.Address {
	return d.displayAddr
}

// DrawBufferAddr returns the region currently rendered into.
func (d *Device) DrawBufferAddr() gpu.Address {
	return d.drawAddr
}

// DisplayEnabled reports whether the display engine is on.
func (d *Device) DisplayEnabled() bool {
	return d.displayOn
}

// VblankCount returns how many vertical blanks have been waited on.
func (d *Device) VblankCount() uint64 {
	return d.vblanks
}

// ListOpen reports whether a command list is currently recording.
func (d *Device) ListOpen() bool {
	return d.listOpen
}

// Regions returns every video-memory allocation made so far.
func (d *Device) Regions() []Region {
	return d.regions
}
