package orion

//go:generate go tool stringer -type=State

// State is the lifecycle state of the window driven by a Dispatcher.
type State int

const (
	// Unconfigured is the initial state. No frame is rendered before the
	// window reported its first non-empty size.
	Unconfigured State = iota

	// Configured means the surface matches the window and frames are rendered.
	Configured

	// Terminated is final. The event loop stops.
	Terminated
)
