//go:build !js

package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestHasTextureRejectsEmptyHandle(t *testing.T) {
	if hasTexture(nil) {
		t.Fatalf("nil texture must not count as acquired")
	}

	// this is what GetCurrentTexture returns for a timed out, outdated or lost surface
	if hasTexture(&wgpu.Texture{}) {
		t.Fatalf("texture with an empty handle must not count as acquired")
	}
}
