//go:build js

package glimpse

import (
	"strconv"
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// id of the element the canvas is attached to. Falls back to the body.
const containerID = "rostig"

type jsWindow struct {
	canvas js.Value
	id     WindowID
	events eventQueue

	width, height uint32
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")

	container := document.Call("getElementById", containerID)
	if container.IsNull() {
		container = document.Get("body")
	}

	container.Call("appendChild", canvas)

	document.Set("title", title)

	style := canvas.Get("style")
	style.Set("width", strconv.Itoa(width)+"px")
	style.Set("height", strconv.Itoa(height)+"px")

	win := &jsWindow{
		canvas: canvas,
		id:     nextWindowID(),
	}

	win.width, win.height = win.Size()
	resizeCanvas(canvas, win.width, win.height)

	return win, nil
}

func (g *jsWindow) ID() WindowID {
	return g.id
}

func (g *jsWindow) Size() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	width := g.canvas.Get("clientWidth").Float()
	height := g.canvas.Get("clientHeight").Float()
	return uint32(width * ratio), uint32(height * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) PrePresentNotify() {
	// the browser presents at the end of the animation frame
}

func (g *jsWindow) Terminate() {
	g.canvas.Call("remove")
}

func (g *jsWindow) Run(handle func(ev Event) bool) error {
	done := make(chan struct{})

	onKey := func(action Action) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			ev := args[0]

			input := KeyInput{Window: g.id, Key: keyOf(ev.Get("code").String()), Action: action}
			if action == Press && ev.Get("repeat").Truthy() {
				input.Action = Repeat
			}

			g.events.push(input)
			return nil
		})
	}

	keyDown := onKey(Press)
	defer keyDown.Release()

	keyUp := onKey(Release)
	defer keyUp.Release()

	window := js.Global()
	window.Call("addEventListener", "keydown", keyDown)
	defer window.Call("removeEventListener", "keydown", keyDown)

	window.Call("addEventListener", "keyup", keyUp)
	defer window.Call("removeEventListener", "keyup", keyUp)

	// report the initial size, later changes are picked up each frame
	g.events.push(Resized{Window: g.id, Width: g.width, Height: g.height})

	var stopped bool

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if stopped {
			return nil
		}

		g.syncSize()

		for _, ev := range g.events.drain() {
			if !handle(ev) {
				stopped = true
				close(done)
				return nil
			}
		}

		if !handle(RedrawRequested{Window: g.id}) {
			stopped = true
			close(done)
			return nil
		}

		window.Call("requestAnimationFrame", frame)
		return nil
	})

	defer frame.Release()

	window.Call("requestAnimationFrame", frame)

	<-done

	return nil
}

// syncSize matches the canvas backing store to its displayed size and
// queues a Resized event if it changed.
func (g *jsWindow) syncSize() {
	width, height := g.Size()
	if width == g.width && height == g.height {
		return
	}

	g.width, g.height = width, height
	resizeCanvas(g.canvas, width, height)

	g.events.push(Resized{Window: g.id, Width: width, Height: height})
}

func resizeCanvas(canvas js.Value, width, height uint32) {
	canvas.Set("width", width)
	canvas.Set("height", height)
}

var codeToKey = map[string]Key{
	"Escape": KeyEscape,
	"Enter":  KeyEnter,
	"Space":  KeySpace,
}

func keyOf(code string) Key {
	if key, ok := codeToKey[code]; ok {
		return key
	}

	return KeyUnknown
}
