// Package config loads PortKiller settings from defaults, an optional YAML
// file and PORTKILLER_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PORTKILLER_CONFIRM_KILL=true.
const EnvPrefix = "PORTKILLER"

// Config holds all user-tunable settings.
type Config struct {
	// ConfirmKill asks for a y/n confirmation in the interactive form
	// before anything is killed. Off by default.
	ConfirmKill bool `mapstructure:"confirm_kill"`

	// DryRun reports what would be killed without signalling anything.
	DryRun bool `mapstructure:"dry_run"`

	NoColor bool   `mapstructure:"no_color"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`

	Theme Theme `mapstructure:"theme"`
}

// Theme holds the lipgloss colors used by the interactive form.
type Theme struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults is the configuration used when no file or environment overrides it.
func Defaults() Config {
	return Config{
		Theme: Theme{
			Highlight: "57",
			Subtle:    "240",
			Error:     "160",
			Success:   "34",
		},
	}
}

// New returns a viper instance with defaults and env overrides registered.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("confirm_kill", d.ConfirmKill)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.subtle", d.Theme.Subtle)
	v.SetDefault("theme.error", d.Theme.Error)
	v.SetDefault("theme.success", d.Theme.Success)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or ~/.config/portkiller/config.yaml when path is empty.
// A missing default file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "portkiller"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "reading config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}
