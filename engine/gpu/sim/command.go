package sim

import (
	"unsafe"

	"github.com/embergfx/ember/engine/gpu"
)

// Opcode identifies one operation of the driver vocabulary as recorded
// by the simulated device.
type Opcode uint8

const (
	OpInit Opcode = iota
	OpStart
	OpFinish
	OpSync
	OpWaitVblank
	OpSwapBuffers
	OpDisplay
	OpDrawBuffer
	OpDispBuffer
	OpDepthBuffer
	OpOffset
	OpViewport
	OpDepthRange
	OpScissor
	OpEnable
	OpClearColor
	OpClearDepth
	OpClear
	OpColor
	OpShadeModel
	OpTexFunc
	OpDrawArray
	OpGetMemory
)

var opcodeNames = map[Opcode]string{
	OpInit:        "Init",
	OpStart:       "Start",
	OpFinish:      "Finish",
	OpSync:        "Sync",
	OpWaitVblank:  "WaitVblank",
	OpSwapBuffers: "SwapBuffers",
	OpDisplay:     "Display",
	OpDrawBuffer:  "DrawBuffer",
	OpDispBuffer:  "DispBuffer",
	OpDepthBuffer: "DepthBuffer",
	OpOffset:      "Offset",
	OpViewport:    "Viewport",
	OpDepthRange:  "DepthRange",
	OpScissor:     "Scissor",
	OpEnable:      "Enable",
	OpClearColor:  "ClearColor",
	OpClearDepth:  "ClearDepth",
	OpClear:       "Clear",
	OpColor:       "Color",
	OpShadeModel:  "ShadeModel",
	OpTexFunc:     "TexFunc",
	OpDrawArray:   "DrawArray",
	OpGetMemory:   "GetMemory",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Command is one recorded driver call. Only the fields relevant to
// the opcode are populated; the rest stay zero.
type Command struct {
	Op Opcode

	Addr   gpu.Address
	Stride int32

	X, Y, W, H int32

	// Value carries the scalar operand: packed color for
	// ClearColor/Color, depth for ClearDepth, size for GetMemory.
	Value uint32

	Format    gpu.PixelFormat
	Bits      gpu.ClearBuffer
	State     gpu.State
	Model     gpu.ShadingModel
	Effect    gpu.TextureEffect
	Component gpu.TextureColorComponent
	Mode      gpu.SyncMode
	Behavior  gpu.SyncBehavior

	Prim     gpu.Primitive
	VType    gpu.VertexType
	Count    int32
	Indices  unsafe.Pointer
	Vertices unsafe.Pointer

	Enabled bool
}
