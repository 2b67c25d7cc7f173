package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
)

const settingsFileName = "settings.yaml"

type fileSettings struct {
	WorkMinutes  int    `yaml:"work_minutes" toml:"work_minutes"`
	BreakMinutes int    `yaml:"break_minutes" toml:"break_minutes"`
	LogLevel     string `yaml:"log_level" toml:"log_level"`
}

// LoadSettings reads timer preferences from path. An empty path resolves to
// the per-user settings file for appName. A missing file yields defaults.
// Files ending in .toml are parsed as TOML, anything else as YAML.
func LoadSettings(appName, path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	if path == "" {
		resolved, err := resolveConfigPath(appName)
		if err != nil {
			return settings, err
		}
		path = resolved
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData fileSettings
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(rawData, &fileData); err != nil {
			return settings, fmt.Errorf("parse settings toml: %w", err)
		}
	} else if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// ConfigPath returns the default settings location for appName.
func ConfigPath(appName string) (string, error) {
	return resolveConfigPath(appName)
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, strings.ToLower(appName), settingsFileName), nil
}

func applyFileSettings(settings *model.Settings, fileData fileSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = strings.ToLower(level)
	}
}
