package gpu

// Physical display geometry. There is exactly one display; the
// framebuffer stride is padded to the next power of two as the
// hardware requires.
const (
	ScreenWidth  = 480
	ScreenHeight = 272
	BufferWidth  = 512
)

// PixelFormat identifies the storage format of a video-memory region.
type PixelFormat uint32

const (
	PixelFormat5650 PixelFormat = iota
	PixelFormat5551
	PixelFormat4444
	PixelFormat8888
)

// BytesPerPixel returns the storage cost of one pixel in the format.
func (f PixelFormat) BytesPerPixel() uint32 {
	if f == PixelFormat8888 {
		return 4
	}
	return 2
}

// Primitive selects the topology a draw call assembles from its
// vertex stream.
type Primitive uint32

const (
	PrimitivePoints Primitive = iota
	PrimitiveLines
	PrimitiveLineStrip
	PrimitiveTriangles
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
	PrimitiveSprites
)

type ShadingModel uint32

const (
	ShadingFlat ShadingModel = iota
	ShadingSmooth
)

type TextureEffect uint32

const (
	TextureEffectModulate TextureEffect = iota
	TextureEffectDecal
	TextureEffectBlend
	TextureEffectReplace
	TextureEffectAdd
)

type TextureColorComponent uint32

const (
	TextureColorComponentRGB TextureColorComponent = iota
	TextureColorComponentRGBA
)

// State names a toggleable fixed-function pipeline stage.
type State uint32

const (
	StateAlphaTest State = iota
	StateDepthTest
	StateScissorTest
	StateStencilTest
	StateBlend
	StateCullFace
	StateDither
	StateFog
	StateClipPlanes
	StateTexture2D
	StateLighting
)

// ClearBuffer selects which target buffers a clear command touches.
// Values are bits and may be or-ed together into a single command.
type ClearBuffer uint32

const (
	ClearColorBuffer   ClearBuffer = 1 << 0
	ClearStencilBuffer ClearBuffer = 1 << 4
	ClearDepthBuffer   ClearBuffer = 1 << 5
)

// SyncMode and SyncBehavior parameterize the wait for command-list
// completion. The safety layer only ever issues SyncFinish/SyncWait.
type SyncMode uint32

const (
	SyncFinish SyncMode = iota
	SyncSignal
	SyncDone
	SyncList
	SyncSend
)

type SyncBehavior uint32

const (
	SyncWait SyncBehavior = iota
	SyncNoWait
)
