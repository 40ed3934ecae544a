package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/logger"
	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	minWindowSide    = 120
	maxWindowSide    = 4096
	minFrameInterval = 16 * time.Millisecond
	maxFrameInterval = time.Second
)

type yamlSettings struct {
	WindowWidth     float32 `yaml:"window_width"`
	WindowHeight    float32 `yaml:"window_height"`
	SystemTray      *bool   `yaml:"system_tray"`
	LogLevel        string  `yaml:"log_level"`
	FrameIntervalMs int     `yaml:"frame_interval_ms"`
}

// LoadSettings reads user preferences from the per-user config directory.
// On first run the defaults are written so the file can be edited.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadOrCreate(configPath)
}

func loadOrCreate(configPath string) (preferences.Settings, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		settings := preferences.DefaultSettings()
		if err := SaveSettingsTo(configPath, settings); err != nil {
			return settings, fmt.Errorf("write default settings: %w", err)
		}
		return settings, nil
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from configPath.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsTo writes user preferences to configPath.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	systemTray := settings.SystemTray
	fileData := yamlSettings{
		WindowWidth:     settings.WindowWidth,
		WindowHeight:    settings.WindowHeight,
		SystemTray:      &systemTray,
		LogLevel:        settings.LogLevel,
		FrameIntervalMs: int(settings.FrameInterval / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WindowWidth >= minWindowSide && fileData.WindowWidth <= maxWindowSide {
		settings.WindowWidth = fileData.WindowWidth
	}
	if fileData.WindowHeight >= minWindowSide && fileData.WindowHeight <= maxWindowSide {
		settings.WindowHeight = fileData.WindowHeight
	}
	if fileData.SystemTray != nil {
		settings.SystemTray = *fileData.SystemTray
	}
	if logger.ValidLevel(fileData.LogLevel) {
		settings.LogLevel = fileData.LogLevel
	}

	interval := time.Duration(fileData.FrameIntervalMs) * time.Millisecond
	if interval >= minFrameInterval && interval <= maxFrameInterval {
		settings.FrameInterval = interval
	}
}
