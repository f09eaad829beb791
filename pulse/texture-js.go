//go:build js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// hasTexture reports whether the surface actually handed out a texture.
// The browser always returns one for a configured canvas.
func hasTexture(texture *wgpu.Texture) bool {
	return texture != nil
}
