package preferences

import (
	"time"

	"pomodoro/internal/logger"
)

// Settings defines editable presentation preferences.
// The work duration is not user editable.
type Settings struct {
	WindowWidth   float32
	WindowHeight  float32
	SystemTray    bool
	LogLevel      string
	FrameInterval time.Duration
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:   320,
		WindowHeight:  160,
		SystemTray:    true,
		LogLevel:      logger.InfoLevel,
		FrameInterval: 200 * time.Millisecond,
	}
}
