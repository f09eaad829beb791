package orion

import (
	"log/slog"

	"github.com/oliverbestmann/rostig/glimpse"
	"github.com/oliverbestmann/rostig/pulse"
)

// Renderer is the surface a Dispatcher drives. *pulse.View implements it.
type Renderer interface {
	Resize(width, height uint32)
	Render() pulse.FrameOutcome

	// Size returns the last known size of the surface. Used to configure
	// the surface again after it was lost or became outdated.
	Size() (uint32, uint32)
}

// Dispatcher routes the events of a single window to its Renderer and turns
// the outcome of each frame into a decision on how the loop continues.
type Dispatcher struct {
	window   glimpse.WindowID
	renderer Renderer
	logger   *slog.Logger

	// called on every redraw request, before rendering
	update func()

	state State
}

func NewDispatcher(window glimpse.WindowID, renderer Renderer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		window:   window,
		renderer: renderer,
		logger:   logger,
		state:    Unconfigured,
	}
}

func (d *Dispatcher) State() State {
	return d.state
}

// Handle applies a single event and returns the resulting state.
// Events of other windows and all events after termination are ignored.
func (d *Dispatcher) Handle(ev glimpse.Event) State {
	if d.state == Terminated || ev.WindowID() != d.window {
		return d.state
	}

	switch ev := ev.(type) {
	case glimpse.CloseRequested:
		d.state = Terminated

	case glimpse.KeyInput:
		if ev.Key == glimpse.KeyEscape && ev.Action == glimpse.Press {
			d.state = Terminated
		}

	case glimpse.Resized:
		d.resized(ev.Width, ev.Height)

	case glimpse.RedrawRequested:
		d.redraw()
	}

	return d.state
}

func (d *Dispatcher) resized(width, height uint32) {
	d.renderer.Resize(width, height)

	// an empty size leaves the surface unconfigured
	if d.state == Unconfigured && width > 0 && height > 0 {
		d.logger.Debug("Surface configured",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		d.state = Configured
	}
}

func (d *Dispatcher) redraw() {
	if d.update != nil {
		d.update()
	}

	if d.state != Configured {
		return
	}

	outcome := d.renderer.Render()

	switch outcome {
	case pulse.Presented:

	case pulse.Lost, pulse.Outdated:
		// configure the surface again with the size we already know
		width, height := d.renderer.Size()
		d.renderer.Resize(width, height)

	case pulse.Timeout:
		d.logger.Warn("Surface timeout")

	default:
		d.logger.Error("Surface error, stopping", slog.String("outcome", outcome.String()))
		d.state = Terminated
	}
}
