package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// ClearColor is the color every presented frame is filled with.
var ClearColor = Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Color is a straight rgba color value in linear rgb color space.
type Color struct {
	R, G, B, A float64
}

func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
