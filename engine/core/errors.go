package core

import (
	"errors"
)

var (
	// ErrOutOfVideoMemory is returned when the video-memory pool cannot
	// satisfy one of the fixed framebuffer allocations at init time.
	// There is no fallback layout; initialization must abort.
	ErrOutOfVideoMemory = errors.New("out of video memory")
	// ErrFrameAlreadyOpen is returned when a second frame is started
	// while one is still recording. The hardware has a single
	// command-list cursor, so reentry would corrupt the open list.
	ErrFrameAlreadyOpen = errors.New("a frame is already open")
	// ErrFrameClosed is returned when a frame is used after its close
	// sequence has run.
	ErrFrameClosed = errors.New("frame already closed")
)
