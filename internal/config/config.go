package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Nenotriple/marktext/pkg/marktext"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "marktext"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "marktext"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MARKTEXT_* (highest among these sources)
	v.SetEnvPrefix("marktext")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize dependent values post-merge
	if strings.TrimSpace(v.GetString("theme")) == "" {
		v.Set("theme", marktext.DefaultTheme().Name)
	}
	if strings.TrimSpace(v.GetString("window.title")) == "" {
		v.Set("window.title", "Text")
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "marktext", "config.toml")
}

// CheckConfigValidity reports every problem in the merged configuration
// rather than stopping at the first.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if name := v.GetString("theme"); name != "" {
		if _, ok := marktext.ThemeByName(name); !ok {
			problems = append(problems, fmt.Sprintf("theme %q is not a built-in theme", name))
		}
	}
	if w := v.GetInt("render.width"); w < 0 {
		problems = append(problems, "render.width must not be negative")
	}
	if geom := strings.TrimSpace(v.GetString("window.geometry")); geom != "" {
		if _, _, err := marktext.ParseGeometry(geom); err != nil {
			problems = append(problems, fmt.Sprintf("window.geometry: %v", err))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
}
