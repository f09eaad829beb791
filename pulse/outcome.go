package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:generate go tool stringer -type=FrameOutcome

// FrameOutcome is the result of a single render attempt.
type FrameOutcome int

const (
	// Presented means the frame was cleared and handed to the display.
	Presented FrameOutcome = iota

	// Lost means the surface must be configured again before it can be used.
	Lost

	// Outdated means the surface no longer matches the window, usually after a resize.
	Outdated

	OutOfMemory

	// Timeout means no frame became available in time. The frame is skipped.
	Timeout

	// Other is any failure we can not classify, including a lost device.
	Other
)

// statusUnknown marks a failed acquire the bindings gave no reason for.
// The native bindings drop the WGPUSurfaceTexture status and hand out an
// empty texture instead.
const statusUnknown wgpu.SurfaceGetCurrentTextureStatus = 0

// AcquireError reports that the surface did not hand out a texture.
type AcquireError struct {
	Status wgpu.SurfaceGetCurrentTextureStatus

	// set if the failure was reported as a validation error
	Err error
}

func (e *AcquireError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("acquire surface texture: %s", e.Err)
	}

	if e.Status == statusUnknown {
		return "acquire surface texture: no texture"
	}

	return fmt.Sprintf("acquire surface texture: %s", e.Status)
}

func (e *AcquireError) Unwrap() error {
	return e.Err
}

// outcomeOf maps the status of a failed acquire to a FrameOutcome.
func outcomeOf(status wgpu.SurfaceGetCurrentTextureStatus) FrameOutcome {
	switch status {
	case wgpu.SurfaceGetCurrentTextureStatusTimeout:
		return Timeout
	case wgpu.SurfaceGetCurrentTextureStatusOutdated:
		return Outdated
	case wgpu.SurfaceGetCurrentTextureStatusLost:
		return Lost
	case wgpu.SurfaceGetCurrentTextureStatusOutOfMemory:
		return OutOfMemory
	default:
		// device lost, error or anything newer
		return Other
	}
}
