package orion

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/oliverbestmann/rostig/glimpse"
	"github.com/oliverbestmann/rostig/pulse"
)

const window glimpse.WindowID = 1

type resizeCall struct {
	width, height uint32
}

type fakeRenderer struct {
	width, height uint32

	resizes  []resizeCall
	renders  int
	outcomes []pulse.FrameOutcome
}

func (r *fakeRenderer) Resize(width, height uint32) {
	r.resizes = append(r.resizes, resizeCall{width, height})

	if width > 0 && height > 0 {
		r.width, r.height = width, height
	}
}

func (r *fakeRenderer) Render() pulse.FrameOutcome {
	r.renders++

	if len(r.outcomes) == 0 {
		return pulse.Presented
	}

	outcome := r.outcomes[0]
	r.outcomes = r.outcomes[1:]
	return outcome
}

func (r *fakeRenderer) Size() (uint32, uint32) {
	return r.width, r.height
}

func newTestDispatcher() (*Dispatcher, *fakeRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	renderer := &fakeRenderer{}
	return NewDispatcher(window, renderer, logger), renderer, &buf
}

func countLevel(buf *bytes.Buffer, level string) int {
	return strings.Count(buf.String(), "level="+level)
}

func TestRedrawBeforeResizeRendersNothing(t *testing.T) {
	d, renderer, _ := newTestDispatcher()

	for range 3 {
		if state := d.Handle(glimpse.RedrawRequested{Window: window}); state != Unconfigured {
			t.Fatalf("expected Unconfigured, got %s", state)
		}
	}

	// an empty size does not configure anything either
	d.Handle(glimpse.Resized{Window: window, Width: 0, Height: 0})
	d.Handle(glimpse.RedrawRequested{Window: window})

	if renderer.renders != 0 {
		t.Fatalf("expected no render attempts, got %d", renderer.renders)
	}

	if d.State() != Unconfigured {
		t.Fatalf("expected Unconfigured, got %s", d.State())
	}
}

func TestResizeConfigures(t *testing.T) {
	d, renderer, _ := newTestDispatcher()

	if state := d.Handle(glimpse.Resized{Window: window, Width: 800, Height: 600}); state != Configured {
		t.Fatalf("expected Configured, got %s", state)
	}

	d.Handle(glimpse.Resized{Window: window, Width: 0, Height: 0})

	if w, h := renderer.Size(); w != 800 || h != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, h)
	}

	d.Handle(glimpse.RedrawRequested{Window: window})

	if renderer.renders != 1 {
		t.Fatalf("expected one render attempt, got %d", renderer.renders)
	}
}

func TestTerminationEvents(t *testing.T) {
	events := []glimpse.Event{
		glimpse.CloseRequested{Window: window},
		glimpse.KeyInput{Window: window, Key: glimpse.KeyEscape, Action: glimpse.Press},
	}

	for _, ev := range events {
		// from every non final state
		for _, configured := range []bool{false, true} {
			d, _, _ := newTestDispatcher()
			if configured {
				d.Handle(glimpse.Resized{Window: window, Width: 100, Height: 100})
			}

			if state := d.Handle(ev); state != Terminated {
				t.Fatalf("%T (configured=%v): expected Terminated, got %s", ev, configured, state)
			}
		}
	}
}

func TestEscapeOnlyOnPress(t *testing.T) {
	events := []glimpse.Event{
		glimpse.KeyInput{Window: window, Key: glimpse.KeyEscape, Action: glimpse.Repeat},
		glimpse.KeyInput{Window: window, Key: glimpse.KeyEscape, Action: glimpse.Release},
		glimpse.KeyInput{Window: window, Key: glimpse.KeySpace, Action: glimpse.Press},
	}

	d, _, _ := newTestDispatcher()
	for _, ev := range events {
		if state := d.Handle(ev); state != Unconfigured {
			t.Fatalf("%v: expected Unconfigured, got %s", ev, state)
		}
	}
}

func TestForeignWindowIgnored(t *testing.T) {
	d, renderer, _ := newTestDispatcher()

	d.Handle(glimpse.Resized{Window: window + 1, Width: 800, Height: 600})
	d.Handle(glimpse.CloseRequested{Window: window + 1})

	if d.State() != Unconfigured {
		t.Fatalf("expected Unconfigured, got %s", d.State())
	}

	if len(renderer.resizes) != 0 {
		t.Fatalf("expected no resize, got %v", renderer.resizes)
	}
}

func TestLostSurfaceIsReconfigured(t *testing.T) {
	for _, outcome := range []pulse.FrameOutcome{pulse.Lost, pulse.Outdated} {
		d, renderer, _ := newTestDispatcher()

		d.Handle(glimpse.Resized{Window: window, Width: 640, Height: 480})
		renderer.resizes = nil
		renderer.outcomes = []pulse.FrameOutcome{outcome}

		if state := d.Handle(glimpse.RedrawRequested{Window: window}); state != Configured {
			t.Fatalf("%s: expected Configured, got %s", outcome, state)
		}

		if len(renderer.resizes) != 1 || renderer.resizes[0] != (resizeCall{640, 480}) {
			t.Fatalf("%s: expected a single resize to 640x480, got %v", outcome, renderer.resizes)
		}
	}
}

func TestTimeoutSkipsFrame(t *testing.T) {
	d, renderer, buf := newTestDispatcher()

	d.Handle(glimpse.Resized{Window: window, Width: 640, Height: 480})
	renderer.outcomes = []pulse.FrameOutcome{pulse.Timeout}

	if state := d.Handle(glimpse.RedrawRequested{Window: window}); state != Configured {
		t.Fatalf("expected Configured, got %s", state)
	}

	if countLevel(buf, "WARN") != 1 {
		t.Fatalf("expected a single warning, got %q", buf.String())
	}

	d.Handle(glimpse.RedrawRequested{Window: window})

	if renderer.renders != 2 {
		t.Fatalf("expected rendering to continue, got %d renders", renderer.renders)
	}
}

func TestFatalSurfaceErrorTerminates(t *testing.T) {
	for _, outcome := range []pulse.FrameOutcome{pulse.OutOfMemory, pulse.Other} {
		d, renderer, buf := newTestDispatcher()

		d.Handle(glimpse.Resized{Window: window, Width: 640, Height: 480})
		renderer.outcomes = []pulse.FrameOutcome{outcome}

		if state := d.Handle(glimpse.RedrawRequested{Window: window}); state != Terminated {
			t.Fatalf("%s: expected Terminated, got %s", outcome, state)
		}

		// nothing happens after termination
		d.Handle(glimpse.RedrawRequested{Window: window})
		d.Handle(glimpse.Resized{Window: window, Width: 100, Height: 100})

		if renderer.renders != 1 {
			t.Fatalf("%s: expected exactly one render, got %d", outcome, renderer.renders)
		}

		if countLevel(buf, "ERROR") != 1 {
			t.Fatalf("%s: expected a single error log, got %q", outcome, buf.String())
		}

		if !strings.Contains(buf.String(), "outcome="+outcome.String()) {
			t.Fatalf("%s: outcome missing from log %q", outcome, buf.String())
		}
	}
}

func TestUpdateRunsOnEveryRedraw(t *testing.T) {
	d, _, _ := newTestDispatcher()

	var updates int
	d.update = func() { updates++ }

	d.Handle(glimpse.RedrawRequested{Window: window})
	d.Handle(glimpse.Resized{Window: window, Width: 10, Height: 10})
	d.Handle(glimpse.RedrawRequested{Window: window})

	if updates != 2 {
		t.Fatalf("expected 2 updates, got %d", updates)
	}
}
