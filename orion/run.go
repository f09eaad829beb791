package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/rostig/glimpse"
	"github.com/oliverbestmann/rostig/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Update is called once per redraw request, before the frame is rendered. Optional.
	Update func()

	// Logger receives the surface warnings and errors. Defaults to slog.Default().
	Logger *slog.Logger
}

// Run opens a window, acquires its gpu surface and clears it every frame
// until the window is closed, escape is pressed or the surface fails for good.
// An error is returned if no window or gpu is available.
func Run(opts RunOptions) error {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 450
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 400
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "rostig"
	}

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device and surface
	view, err := pulse.New(win)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer view.Release()

	dispatcher := NewDispatcher(win.ID(), view, opts.Logger)
	dispatcher.update = opts.Update

	return win.Run(func(ev glimpse.Event) bool {
		return dispatcher.Handle(ev) != Terminated
	})
}
