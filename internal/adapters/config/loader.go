// Package config loads the optional settings file and .env overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader from a YAML file. The file lives at
// $SIX_CONFIG, or <user config dir>/six/config.yaml when unset.
type Loader struct {
	log ports.Logger
}

// NewLoader returns a settings loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// fileSettings is the YAML schema of the settings file.
type fileSettings struct {
	Source        string `yaml:"source"`
	Local         string `yaml:"local"`
	DefaultReport string `yaml:"default_report"`
}

// Load reads the settings file. Environment entries from a .env file in the
// working directory are applied first, without overriding the real
// environment.
func (l *Loader) Load() (*domain.Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.Wrap(err, "failed to load .env")
	}

	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Debug("no settings file at " + path)
		return &domain.Settings{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var fc fileSettings
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}
	return &domain.Settings{
		SourcePath:    fc.Source,
		LocalPlace:    fc.Local,
		DefaultReport: fc.DefaultReport,
	}, nil
}

func settingsPath() (string, error) {
	if path := os.Getenv("SIX_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "cannot locate user config directory")
	}
	return filepath.Join(dir, "six", "config.yaml"), nil
}
