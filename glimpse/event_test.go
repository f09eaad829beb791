package glimpse

import "testing"

func TestEventQueueDrain(t *testing.T) {
	var q eventQueue

	q.push(Resized{Window: 1, Width: 800, Height: 600})
	q.push(CloseRequested{Window: 1})

	events := q.drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if _, ok := events[0].(Resized); !ok {
		t.Fatalf("expected Resized first, got %T", events[0])
	}

	// events pushed while dispatching must not show up in the batch being dispatched
	q.push(RedrawRequested{Window: 1})

	if _, ok := events[1].(CloseRequested); !ok {
		t.Fatalf("expected CloseRequested second, got %T", events[1])
	}

	next := q.drain()
	if len(next) != 1 {
		t.Fatalf("expected 1 event, got %d", len(next))
	}

	if len(q.drain()) != 0 {
		t.Fatalf("queue must be empty after drain")
	}
}

func TestEventWindowID(t *testing.T) {
	events := []Event{
		Resized{Window: 7},
		CloseRequested{Window: 7},
		KeyInput{Window: 7, Key: KeyEscape, Action: Press},
		RedrawRequested{Window: 7},
	}

	for _, ev := range events {
		if ev.WindowID() != 7 {
			t.Fatalf("%T: expected window 7, got %d", ev, ev.WindowID())
		}
	}
}

func TestWindowIDsAreUnique(t *testing.T) {
	a, b := nextWindowID(), nextWindowID()
	if a == b {
		t.Fatalf("expected distinct window ids, got %d twice", a)
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" {
		t.Fatalf("unexpected name %q", KeyEscape.String())
	}

	if Repeat.String() != "Repeat" {
		t.Fatalf("unexpected name %q", Repeat.String())
	}
}
