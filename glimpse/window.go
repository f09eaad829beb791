package glimpse

import (
	"sync/atomic"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// WindowID identifies a window for the lifetime of the process.
type WindowID uint64

var lastWindowID atomic.Uint64

func nextWindowID() WindowID {
	return WindowID(lastWindowID.Add(1))
}

type Window interface {
	ID() WindowID

	// Size returns the size of the drawable area in physical pixels.
	Size() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PrePresentNotify must be called right before a frame is presented to
	// the windows surface.
	PrePresentNotify()

	// Run blocks and passes every window event to handle until handle returns false.
	// Each iteration of the loop ends with a RedrawRequested event.
	Run(handle func(ev Event) bool) error

	Terminate()
}
