//go:build js

package pulse

// DefaultProfile restricts the surface to the limits of a webgl2 capable
// browser.
var DefaultProfile = Profile{
	Name:                  "web",
	Backends:              backendGL,
	MaxTextureDimension2D: 2048,
}
