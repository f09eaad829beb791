package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Target is the window a View presents to.
type Target interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Size() (uint32, uint32)

	// PrePresentNotify is called right before a frame is presented.
	PrePresentNotify()
}

// View owns the presentable surface of a window together with its
// configuration. The surface is configured again whenever the size changes.
type View struct {
	// nil if the view was not created by New
	ctx *Context

	target  Target
	chain   swapchain
	profile Profile

	surfaceConfig *wgpu.SurfaceConfiguration

	// last size requested by a resize, before clamping to the profile
	width, height uint32

	// failed acquires in a row that came without a status
	unexplained int
}

// maxUnexplainedFailures is how many frames in a row may fail without a
// status before the surface is given up on.
const maxUnexplainedFailures = 16

// New creates the gpu context for the target and negotiates the surface
// configuration for the targets current size. The surface is not configured
// until the first call to Resize.
func New(target Target) (*View, error) {
	profile := DefaultProfile

	ctx, err := NewContext(target.SurfaceDescriptor(), profile)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	width, height := target.Size()

	config, err := ChooseConfiguration(caps, width, height)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("choose surface configuration: %w", err)
	}

	slog.Info("Negotiated surface configuration",
		slog.Any("format", config.Format),
		slog.Any("presentMode", config.PresentMode),
		slog.Int("width", int(config.Width)),
		slog.Int("height", int(config.Height)),
	)

	view := newView(target, &surfaceSwapchain{ctx: ctx}, config, profile)
	view.ctx = ctx

	return view, nil
}

func newView(target Target, chain swapchain, config *wgpu.SurfaceConfiguration, profile Profile) *View {
	return &View{
		target:        target,
		chain:         chain,
		profile:       profile,
		surfaceConfig: config,
		width:         config.Width,
		height:        config.Height,
	}
}

// Size returns the last size the view was resized to, or the size of the
// target at creation time if it was never resized.
func (vs *View) Size() (uint32, uint32) {
	return vs.width, vs.height
}

// Configuration returns a copy of the current surface configuration.
func (vs *View) Configuration() wgpu.SurfaceConfiguration {
	return *vs.surfaceConfig
}

// Resize configures the surface for a new size. A size with a zero
// dimension is ignored, this happens e.g. while a window is minimized.
func (vs *View) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	vs.width = width
	vs.height = height

	vs.surfaceConfig.Width, vs.surfaceConfig.Height = vs.profile.clampSize(width, height)

	slog.Debug("Configure surface",
		slog.Int("width", int(vs.surfaceConfig.Width)),
		slog.Int("height", int(vs.surfaceConfig.Height)),
	)

	vs.chain.Configure(vs.surfaceConfig)
}

// Render acquires the next frame, clears it to ClearColor and presents it.
// Failures are reported through the returned FrameOutcome.
func (vs *View) Render() FrameOutcome {
	fr, err := vs.chain.Acquire()
	if err != nil {
		outcome := vs.acquireFailed(err)

		slog.Debug("Acquire surface texture failed",
			slog.String("outcome", outcome.String()),
			slog.String("err", err.Error()),
		)

		return outcome
	}

	vs.unexplained = 0

	if err := fr.Clear(ClearColor); err != nil {
		fr.Release()

		slog.Warn("Clear frame failed", slog.String("err", err.Error()))
		return Other
	}

	vs.target.PrePresentNotify()
	fr.Present()

	return Presented
}

func (vs *View) acquireFailed(err error) FrameOutcome {
	var acquireErr *AcquireError
	if !errors.As(err, &acquireErr) {
		return Other
	}

	if acquireErr.Status != statusUnknown {
		return outcomeOf(acquireErr.Status)
	}

	// No reason given. Configuring the surface again heals outdated and lost
	// surfaces, so ask for that, unless it did not help many times in a row.
	vs.unexplained++
	if vs.unexplained > maxUnexplainedFailures {
		return Other
	}

	width, height := vs.profile.clampSize(vs.target.Size())
	if width != vs.surfaceConfig.Width || height != vs.surfaceConfig.Height {
		return Outdated
	}

	return Lost
}

// Release frees all gpu resources held by the view.
func (vs *View) Release() {
	if vs.ctx != nil {
		vs.ctx.Release()
		vs.ctx = nil
	}
}
