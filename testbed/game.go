package testbed

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"

	"github.com/embergfx/ember/engine/core"
	"github.com/embergfx/ember/engine/gpu"
	"github.com/embergfx/ember/engine/gpu/sim"
	"github.com/embergfx/ember/engine/math"
	"github.com/embergfx/ember/engine/renderer"
)

// Demo drives the safety layer through a simulated device: a cleared
// background and a spinning triangle, one frame per simulated vblank.
type Demo struct {
	cfg     *Config
	device  *sim.Device
	ctx     *renderer.GraphicsContext
	clock   *core.Clock
	metrics *core.FrameMetrics

	stopped atomic.Bool
}

func NewDemo(cfg *Config) (*Demo, error) {
	core.SetLogLevel(cfg.logLevel())

	options := []sim.Option{
		sim.WithVblankInterval(time.Duration(cfg.VblankIntervalMS) * time.Millisecond),
	}
	if cfg.VRAMSizeBytes > 0 {
		options = append(options, sim.WithVRAMSize(cfg.VRAMSizeBytes))
	}
	device := sim.NewDevice(options...)

	ctx, err := renderer.New(device, device)
	if err != nil {
		err = fmt.Errorf("demo init: %w", err)
		core.LogError(err.Error())
		return nil, err
	}

	return &Demo{
		cfg:     cfg,
		device:  device,
		ctx:     ctx,
		clock:   core.NewClock(),
		metrics: core.NewFrameMetrics(),
	}, nil
}

// Stop makes Run return after the current frame's close sequence
// completes. Safe to call from another goroutine.
func (d *Demo) Stop() {
	d.stopped.Store(true)
}

func (d *Demo) Run() error {
	core.LogInfo("demo: rendering %d frames", d.cfg.Frames)

	for frameIndex := 0; !d.stopped.Load(); frameIndex++ {
		if d.cfg.Frames > 0 && frameIndex >= d.cfg.Frames {
			break
		}
		d.clock.Start()
		if err := d.renderFrame(frameIndex); err != nil {
			return err
		}
		d.clock.Update()
		d.metrics.Update(d.clock.Elapsed())

		if frameIndex > 0 && frameIndex%120 == 0 {
			core.LogInfo("demo: frame %d, %.1f fps, %.2f ms/frame, display=%#x",
				frameIndex, d.metrics.FPS(), d.metrics.FrameTime(), d.device.DisplayBufferAddr())
		}
	}

	core.LogInfo("demo: done after %d vblanks", d.device.VblankCount())
	return nil
}

func (d *Demo) renderFrame(frameIndex int) error {
	frame, err := d.ctx.StartFrame()
	if err != nil {
		return err
	}
	defer frame.Close()

	if err := frame.ClearColorDepth(renderer.RGB(16, 16, 32), 0xFFFF); err != nil {
		return err
	}
	if err := frame.SetShadingModel(gpu.ShadingSmooth); err != nil {
		return err
	}

	angle := float32(frameIndex) * math32.Pi / 90
	pulse := uint8(math.Clamp(128+127*math32.Sin(angle), 0, 255))

	// The triangle is rebuilt every frame, so it goes through the
	// per-frame scratch rather than a persistent buffer.
	verts, err := renderer.StageVertices(frame, spinningTriangle(angle, pulse))
	if err != nil {
		return err
	}
	indices, err := renderer.StageIndices(frame, []renderer.Index16{0, 1, 2})
	if err != nil {
		return err
	}
	return frame.DrawArrayIndexed(gpu.PrimitiveTriangles, verts, indices)
}

func spinningTriangle(angle float32, pulse uint8) []renderer.ColorVertex {
	const (
		cx     = float32(gpu.ScreenWidth) / 2
		cy     = float32(gpu.ScreenHeight) / 2
		radius = float32(100)
	)
	verts := make([]renderer.ColorVertex, 3)
	colors := []renderer.Color32{
		renderer.RGB(pulse, 0, 0),
		renderer.RGB(0, pulse, 0),
		renderer.RGB(0, 0, pulse),
	}
	for i := range verts {
		a := angle + float32(i)*2*math32.Pi/3
		verts[i] = renderer.ColorVertex{
			Color: colors[i],
			X:     cx + radius*math32.Cos(a),
			Y:     cy + radius*math32.Sin(a),
			Z:     0,
		}
	}
	return verts
}
