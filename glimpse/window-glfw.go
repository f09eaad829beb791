//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and the surface must only be touched from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win    *glfw.Window
	id     WindowID
	events eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		win: window,
		id:  nextWindowID(),
	}

	configureCallbacks(w)

	return w, nil
}

func (g *glfwWindow) ID() WindowID {
	return g.id
}

func (g *glfwWindow) Size() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) PrePresentNotify() {
	// glfw offers no hook to pace frames against the compositor
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handle func(ev Event) bool) error {
	// report the initial size, the callback only fires on changes
	width, height := g.Size()
	g.events.push(Resized{Window: g.id, Width: width, Height: height})

	for {
		if g.win.GetAttrib(glfw.Iconified) == glfw.True {
			// nothing to draw, wait instead of spinning
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}

		for _, ev := range g.events.drain() {
			if !handle(ev) {
				return nil
			}
		}

		if !handle(RedrawRequested{Window: g.id}) {
			return nil
		}
	}
}

func configureCallbacks(w *glfwWindow) {
	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		w.events.push(Resized{Window: w.id, Width: uint32(width), Height: uint32(height)})
	})

	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.events.push(CloseRequested{Window: w.id})
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		ev := KeyInput{Window: w.id, Key: keyOf(glfwKey)}

		switch action {
		case glfw.Press:
			ev.Action = Press
		case glfw.Repeat:
			ev.Action = Repeat
		case glfw.Release:
			ev.Action = Release
		default:
			return
		}

		w.events.push(ev)
	})
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeyEnter:  KeyEnter,
	glfw.KeySpace:  KeySpace,
}

func keyOf(glfwKey glfw.Key) Key {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)

		return KeyUnknown
	}

	return key
}
