package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/rostig/orion"
)

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})
	slog.SetDefault(slog.New(handler))

	stopProfile := startProfile(os.Getenv("ROSTIG_PROFILE"))

	err := orion.Run(orion.RunOptions{})

	stopProfile()

	if err != nil {
		fmt.Println("Exited with error:", err)
		os.Exit(1)
	}

	fmt.Println("Exited without error.")
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("ROSTIG_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
