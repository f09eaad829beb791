//go:build !js

package pulse

// DefaultProfile uses the platform native backends with the default limits.
var DefaultProfile = Profile{
	Name:                  "native",
	Backends:              backendPrimary,
	MaxTextureDimension2D: 8192,
}
