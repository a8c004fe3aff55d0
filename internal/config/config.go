// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/importsort/sortconfig/internal/issue"
)

const (
	// AppName is the subdirectory of the user config directory that
	// holds the settings file.
	AppName = "importsort"
	// ConfigFileName is the name of the settings file (without extension).
	ConfigFileName = "config"
)

// Settings tune resolution behavior for the whole library.
type Settings struct {
	// DefaultBase overrides the default module search base. When empty
	// the directory of the running executable is used.
	DefaultBase string `mapstructure:"default_base"`

	// SearchPlaces overrides the project config file names probed per
	// directory, in precedence order.
	SearchPlaces []string `mapstructure:"search_places"`

	// LogLevel is the charmbracelet/log level name for diagnostics
	// ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level"`
}

// LoadOptions defines explicit settings loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific settings file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the settings directory lookup when set.
	ConfigDirPath string
}

// Provider loads settings from explicit options.
type Provider interface {
	Load(opts LoadOptions) (*Settings, error)
}

type fileProvider struct{}

// NewProvider creates a settings provider backed by the filesystem.
func NewProvider() Provider {
	return &fileProvider{}
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{LogLevel: "warn"}
}

// SettingsDir returns the directory searched for the settings file.
func SettingsDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", issue.WrapWithOperation(err, "locate user config directory")
	}
	return filepath.Join(base, AppName), nil
}

// Load reads settings from the requested source. A missing file is not
// an error: defaults are returned. A present but unreadable or
// malformed file is an error, which callers may downgrade to defaults.
func (p *fileProvider) Load(opts LoadOptions) (*Settings, error) {
	v := viper.New()

	switch {
	case opts.ConfigFilePath != "":
		v.SetConfigFile(opts.ConfigFilePath)
	default:
		dir := opts.ConfigDirPath
		if dir == "" {
			d, err := SettingsDir()
			if err != nil {
				return DefaultSettings(), nil
			}
			dir = d
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, issue.WrapWithContext(err, "read settings", v.ConfigFileUsed())
	}

	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, issue.WrapWithContext(err, "parse settings", v.ConfigFileUsed())
	}

	return settings, nil
}
