package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// swapchain hands out the frames of a configured surface.
type swapchain interface {
	Configure(config *wgpu.SurfaceConfiguration)
	Acquire() (frame, error)
}

// frame is a single acquired surface texture. After Acquire either
// Present or Release must be called, never both.
// A failed Acquire returns an *AcquireError.
type frame interface {
	Clear(color Color) error
	Present()
	Release()
}

type surfaceSwapchain struct {
	ctx *Context
}

func (s *surfaceSwapchain) Configure(config *wgpu.SurfaceConfiguration) {
	s.ctx.Surface.Configure(s.ctx.Device, config)
}

func (s *surfaceSwapchain) Acquire() (frame, error) {
	texture, err := s.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, &AcquireError{Status: wgpu.SurfaceGetCurrentTextureStatusError, Err: err}
	}

	if !hasTexture(texture) {
		return nil, &AcquireError{Status: statusUnknown}
	}

	return &surfaceFrame{ctx: s.ctx, texture: texture}, nil
}

type surfaceFrame struct {
	ctx     *Context
	texture *wgpu.Texture
}

// Clear records a single render pass that only clears the frame and submits it.
func (f *surfaceFrame) Clear(color Color) error {
	view, err := f.texture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	defer view.Release()

	enc, err := f.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
	})

	defer pass.Release()

	// nothing is drawn, the load op does all the work
	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Render Encoder"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	f.ctx.Submit(buf)

	return nil
}

func (f *surfaceFrame) Present() {
	f.ctx.Surface.Present()

	// a presented texture is owned by the surface again
	f.texture = nil
}

func (f *surfaceFrame) Release() {
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}
