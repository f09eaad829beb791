package pulse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/exp/constraints"
)

// backend bits of WGPUInstanceBackend, the bindings only export InstanceBackendAll
const (
	backendVulkan        wgpu.InstanceBackend = 1 << 0
	backendGL            wgpu.InstanceBackend = 1 << 1
	backendMetal         wgpu.InstanceBackend = 1 << 2
	backendDX12          wgpu.InstanceBackend = 1 << 3
	backendBrowserWebGPU wgpu.InstanceBackend = 1 << 5

	backendPrimary = backendVulkan | backendMetal | backendDX12 | backendBrowserWebGPU
)

// Profile bundles the choices that differ between the native and the web
// target. It is resolved once, when the context is created.
type Profile struct {
	Name string

	// backends the instance may pick an adapter from
	Backends wgpu.InstanceBackend

	// largest width or height a surface may be configured with
	MaxTextureDimension2D uint32
}

// clampSize limits a surface size to what the profile allows.
func (p Profile) clampSize(width, height uint32) (uint32, uint32) {
	if p.MaxTextureDimension2D == 0 {
		return width, height
	}

	return clamp(width, 1, p.MaxTextureDimension2D),
		clamp(height, 1, p.MaxTextureDimension2D)
}

func clamp[T constraints.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}
