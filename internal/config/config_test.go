package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// missingConfig points Viper at a file that does not exist so the host's
// real config and search paths stay out of the test.
func missingConfig(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	return v
}

func writeConfig(t *testing.T, content string) *viper.Viper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := missingConfig(t)
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("theme"); got != "default" {
		t.Errorf("theme = %q, want %q", got, "default")
	}
	if !v.GetBool("mouse") {
		t.Error("mouse = false, want true")
	}
	if got := v.GetString("window.title"); got != "Text" {
		t.Errorf("window.title = %q, want %q", got, "Text")
	}
	if got := v.GetInt("render.width"); got != 80 {
		t.Errorf("render.width = %d, want 80", got)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	v := writeConfig(t, `theme = "nord"

[window]
title = "Docs"
`)
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("theme"); got != "nord" {
		t.Errorf("theme = %q, want %q", got, "nord")
	}
	if got := v.GetString("window.title"); got != "Docs" {
		t.Errorf("window.title = %q, want %q", got, "Docs")
	}
	// Untouched keys keep their defaults.
	if !v.GetBool("mouse") {
		t.Error("mouse = false, want true")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("MARKTEXT_THEME", "dracula")
	t.Setenv("MARKTEXT_WINDOW_TITLE", "EnvTitle")

	v := writeConfig(t, `theme = "nord"`)
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("theme"); got != "dracula" {
		t.Errorf("theme = %q, want %q", got, "dracula")
	}
	if got := v.GetString("window.title"); got != "EnvTitle" {
		t.Errorf("window.title = %q, want %q", got, "EnvTitle")
	}
}

func TestLoadBlankThemeFallsBack(t *testing.T) {
	v := writeConfig(t, `theme = "  "`)
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("theme"); got != "default" {
		t.Errorf("theme = %q, want %q", got, "default")
	}
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	v.Set("theme", "gruvbox")
	v.Set("render.width", 100)
	v.Set("window.geometry", "100x30")

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("theme", "solarized")
	v.Set("render.width", -5)
	v.Set("window.geometry", "wide")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	msg := err.Error()
	expected := []string{
		`theme "solarized" is not a built-in theme`,
		"render.width must not be negative",
		"window.geometry",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	for _, want := range []string{
		`theme = "default"`,
		"mouse = true",
		"[window]",
		`title = "Text"`,
		"[render]",
		"width = 80",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated config missing %q", want)
		}
	}
}

func TestUpdateTOMLCommentsUnknownKeys(t *testing.T) {
	in := `theme = "nord"
old_key = 1

[window]
title = "Docs"
`
	out, changed := UpdateTOML(in)
	if !changed {
		t.Fatal("expected changes")
	}
	if !strings.Contains(out, "# OUTDATED: option removed from config schema") {
		t.Error("unknown key was not flagged")
	}
	if !strings.Contains(out, "# old_key = 1") {
		t.Error("unknown key was not commented out")
	}
	if !strings.Contains(out, `theme = "nord"`) {
		t.Error("known key was altered")
	}
	if !strings.Contains(out, "mouse = true") {
		t.Error("missing default was not appended")
	}
}

func TestUpdateTOMLNoChange(t *testing.T) {
	if _, changed := UpdateTOML(RenderDefaultTOML()); changed {
		t.Fatal("generated config reported as outdated")
	}
}
