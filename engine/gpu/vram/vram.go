// Package vram abstracts the platform's video-memory allocator. The
// pool is small and fixed; the safety layer draws exactly three
// framebuffer-sized regions from it at init time and never frees them.
package vram

import (
	"github.com/embergfx/ember/engine/gpu"
)

// Allocator hands out regions of the video-memory pool. Allocations
// are permanent: the hardware session outlives every frame, so there
// is no free operation.
type Allocator interface {
	// AllocTexturePixels reserves a width*height region of the given
	// pixel format and returns its base address. Returns
	// core.ErrOutOfVideoMemory (possibly wrapped) when the pool cannot
	// satisfy the request.
	AllocTexturePixels(width, height uint32, format gpu.PixelFormat) (gpu.Address, error)
}

// RegionSize returns the byte size of a width*height region in the
// given format.
func RegionSize(width, height uint32, format gpu.PixelFormat) uint32 {
	return width * height * format.BytesPerPixel()
}
