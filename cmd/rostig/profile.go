//go:build !js

package main

import (
	"log/slog"

	"github.com/pkg/profile"
)

func startProfile(mode string) (stop func()) {
	var opt func(*profile.Profile)

	switch mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "":
		return func() {}
	default:
		slog.Warn("Unknown profile mode", slog.String("mode", mode))
		return func() {}
	}

	return profile.Start(opt, profile.NoShutdownHook).Stop
}
