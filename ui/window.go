package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"strawberry-snake/config"
	"strawberry-snake/logger"
)

var traceLevels = map[logger.Level]rl.TraceLogLevel{
	logger.LevelDebug: rl.LogDebug,
	logger.LevelInfo:  rl.LogInfo,
	logger.LevelWarn:  rl.LogWarning,
	logger.LevelError: rl.LogError,
}

// OpenWindow opens a window sized to the board. The loop does its own pacing, so
// raylib's frame limiter is left off.
func OpenWindow(cfg *config.Config, log *logger.Logger) error {
	if lvl, ok := traceLevels[log.Level()]; ok {
		rl.SetTraceLogLevel(lvl)
	} else {
		rl.SetTraceLogLevel(rl.LogNone)
	}

	width, height := cfg.WindowSize()
	rl.InitWindow(int32(width), int32(height), cfg.Title)
	if !rl.IsWindowReady() {
		return errors.Errorf("could not open a %dx%d window", width, height)
	}
	// Escape is handled by Keyboard.Poll
	rl.SetExitKey(rl.KeyNull)

	log.Infof("window %dx%d opened", width, height)
	return nil
}

func CloseWindow() {
	rl.CloseWindow()
}
