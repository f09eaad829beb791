package pulse

import (
	"errors"
	"slices"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrNoSurfaceFormat = errors.New("surface supports no texture formats")

var srgbFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatRGBA8UnormSrgb,
	wgpu.TextureFormatBGRA8UnormSrgb,
}

func isSRGB(format wgpu.TextureFormat) bool {
	return slices.Contains(srgbFormats, format)
}

// ChooseConfiguration negotiates a surface configuration from the capabilities
// reported for an adapter. It prefers the first srgb format, falling back to the
// first format at all, and mailbox presentation, falling back to fifo.
func ChooseConfiguration(caps wgpu.SurfaceCapabilities, width, height uint32) (*wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}

	format := caps.Formats[0]
	if idx := slices.IndexFunc(caps.Formats, isSRGB); idx >= 0 {
		format = caps.Formats[idx]
	}

	presentMode := wgpu.PresentModeFifo
	if slices.Contains(caps.PresentModes, wgpu.PresentModeMailbox) {
		presentMode = wgpu.PresentModeMailbox
	}

	var alphaMode wgpu.CompositeAlphaMode
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       max(width, 1),
		Height:      max(height, 1),
		PresentMode: presentMode,
		AlphaMode:   alphaMode,

		DesiredMaximumFrameLatency: 2,
	}, nil
}
