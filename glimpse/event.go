package glimpse

// Event is anything a window reports to the event loop. The concrete
// types are Resized, CloseRequested, KeyInput and RedrawRequested.
type Event interface {
	WindowID() WindowID

	event()
}

// Resized reports the new size of the drawable area in physical pixels.
// Both dimensions may be zero, e.g. while the window is minimized.
type Resized struct {
	Window        WindowID
	Width, Height uint32
}

type CloseRequested struct {
	Window WindowID
}

type KeyInput struct {
	Window WindowID
	Key    Key
	Action Action
}

// RedrawRequested asks for a new frame to be rendered.
type RedrawRequested struct {
	Window WindowID
}

func (e Resized) WindowID() WindowID         { return e.Window }
func (e CloseRequested) WindowID() WindowID  { return e.Window }
func (e KeyInput) WindowID() WindowID        { return e.Window }
func (e RedrawRequested) WindowID() WindowID { return e.Window }

func (Resized) event()         {}
func (CloseRequested) event()  {}
func (KeyInput) event()        {}
func (RedrawRequested) event() {}

// eventQueue collects events raised by platform callbacks until the
// event loop gets to dispatch them.
type eventQueue struct {
	pending []Event
	drained []Event
}

func (q *eventQueue) push(ev Event) {
	q.pending = append(q.pending, ev)
}

// drain returns all queued events. The returned slice is only valid
// until the next call to drain.
func (q *eventQueue) drain() []Event {
	q.pending, q.drained = q.drained[:0], q.pending
	return q.drained
}
