//go:build !js

package pulse

import (
	"reflect"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// hasTexture reports whether the surface actually handed out a texture.
// On timeout, outdated or lost surfaces wgpu-native returns a NULL texture
// without raising an error, so the handle itself must be checked.
func hasTexture(texture *wgpu.Texture) bool {
	if texture == nil {
		return false
	}

	ref := reflect.ValueOf(texture).Elem().FieldByName("ref")
	if !ref.IsValid() || ref.Kind() != reflect.Pointer {
		return true
	}

	return !ref.IsNil()
}
