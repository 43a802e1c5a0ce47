package core

const frameAvgCount = 30

// FrameMetrics accumulates per-frame timing for the render loop. The
// hardware paces the loop at the vblank rate, so FPS here is a direct
// read on how many close sequences completed per wall-clock second.
type FrameMetrics struct {
	frameTimes  [frameAvgCount]float64
	frameCursor uint8
	msAvg       float64

	frames        int32
	accumulatedMS float64
	fps           float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

// Update records one completed frame. elapsed is the frame duration in
// seconds as measured by the caller's clock.
func (m *FrameMetrics) Update(elapsed float64) {
	frameMS := elapsed * 1000.0
	m.frameTimes[m.frameCursor] = frameMS
	if m.frameCursor == frameAvgCount-1 {
		sum := 0.0
		for i := uint8(0); i < frameAvgCount; i++ {
			sum += m.frameTimes[i]
		}
		m.msAvg = sum / float64(frameAvgCount)
	}
	m.frameCursor++
	m.frameCursor %= frameAvgCount

	m.accumulatedMS += frameMS
	if m.accumulatedMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedMS -= 1000
		m.frames = 0
	}
	m.frames++
}

func (m *FrameMetrics) FPS() float64 {
	return m.fps
}

// FrameTime returns the rolling average frame duration in milliseconds.
func (m *FrameMetrics) FrameTime() float64 {
	return m.msAvg
}
