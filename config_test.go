package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	result := loadConfigFromPath(filepath.Join(t.TempDir(), "missing.toml"))

	if result.Status != "Default" {
		t.Errorf("expected status Default, got %s", result.Status)
	}
	if result.HasError {
		t.Error("missing config file should not be an error")
	}

	config := result.Config
	if config.WindowWidth != defaultWidth || config.WindowHeight != defaultHeight {
		t.Errorf("expected %dx%d, got %dx%d", defaultWidth, defaultHeight, config.WindowWidth, config.WindowHeight)
	}
	if config.InitialDisplayMode != DisplayModeFit {
		t.Errorf("expected fit mode, got %s", config.InitialDisplayMode)
	}
	if config.SortMethod != SortSimple {
		t.Errorf("expected simple sort, got %d", config.SortMethod)
	}
	if config.WrapNavigation {
		t.Error("wrap navigation should default to off")
	}
	if config.Mouse.WheelZoomStep != defaultZoomStep {
		t.Errorf("expected wheel zoom step %v, got %v", defaultZoomStep, config.Mouse.WheelZoomStep)
	}
	if !config.Mouse.GestureNav {
		t.Error("gesture navigation should default to on")
	}
	if len(config.Keybindings) == 0 || len(config.Mousebindings) == 0 {
		t.Error("default bindings missing")
	}
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeConfigFile(t, `
window_width = 1280
window_height = 720
initial_display_mode = "original"
wrap_navigation = true
sort_method = 0
cache_size = 32

[mouse]
wheel_zoom_step = 0.2
wheel_inverted = true
`)

	result := loadConfigFromPath(path)
	if result.Status != "OK" {
		t.Fatalf("expected status OK, got %s (%v)", result.Status, result.Warnings)
	}

	config := result.Config
	if config.WindowWidth != 1280 || config.WindowHeight != 720 {
		t.Errorf("expected 1280x720, got %dx%d", config.WindowWidth, config.WindowHeight)
	}
	if config.InitialDisplayMode != DisplayModeOriginal {
		t.Errorf("expected original mode, got %s", config.InitialDisplayMode)
	}
	if !config.WrapNavigation {
		t.Error("wrap navigation should be enabled")
	}
	if config.SortMethod != SortNatural {
		t.Errorf("expected natural sort, got %d", config.SortMethod)
	}
	if config.CacheSize != 32 {
		t.Errorf("expected cache size 32, got %d", config.CacheSize)
	}
	if config.Mouse.WheelZoomStep != 0.2 {
		t.Errorf("expected wheel zoom step 0.2, got %v", config.Mouse.WheelZoomStep)
	}
	if !config.Mouse.WheelInverted {
		t.Error("wheel inversion should be enabled")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		toml  string
		check func(t *testing.T, c Config)
	}{
		{
			name: "Window too small",
			toml: "window_width = 200\nwindow_height = 100\n",
			check: func(t *testing.T, c Config) {
				if c.WindowWidth != defaultWidth || c.WindowHeight != defaultHeight {
					t.Errorf("expected defaults, got %dx%d", c.WindowWidth, c.WindowHeight)
				}
			},
		},
		{
			name: "Sort method out of range",
			toml: "sort_method = 9\n",
			check: func(t *testing.T, c Config) {
				if c.SortMethod != SortSimple {
					t.Errorf("expected simple sort fallback, got %d", c.SortMethod)
				}
			},
		},
		{
			name: "Cache size clamped",
			toml: "cache_size = 1000\n",
			check: func(t *testing.T, c Config) {
				if c.CacheSize != 64 {
					t.Errorf("expected cache size 64, got %d", c.CacheSize)
				}
			},
		},
		{
			name: "Zoom step out of range",
			toml: "[mouse]\nwheel_zoom_step = 5.0\n",
			check: func(t *testing.T, c Config) {
				if c.Mouse.WheelZoomStep != defaultZoomStep {
					t.Errorf("expected default zoom step, got %v", c.Mouse.WheelZoomStep)
				}
			},
		},
		{
			name: "Help font too small",
			toml: "help_font_size = 6.0\n",
			check: func(t *testing.T, c Config) {
				if c.HelpFontSize != 24.0 {
					t.Errorf("expected font size 24, got %v", c.HelpFontSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := loadConfigFromPath(writeConfigFile(t, tt.toml))
			tt.check(t, result.Config)
		})
	}
}

func TestLoadConfigUnknownDisplayMode(t *testing.T) {
	result := loadConfigFromPath(writeConfigFile(t, `initial_display_mode = "stretched"`))

	if result.Config.InitialDisplayMode != DisplayModeFit {
		t.Errorf("expected fit fallback, got %s", result.Config.InitialDisplayMode)
	}
	if result.Status != "Warning" {
		t.Errorf("expected status Warning, got %s", result.Status)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	result := loadConfigFromPath(writeConfigFile(t, "window_width = [not toml"))

	if !result.HasError || result.Status != "Error" {
		t.Errorf("expected error status, got %s", result.Status)
	}
	// Defaults survive a broken file
	if result.Config.WindowWidth != defaultWidth {
		t.Errorf("expected default width, got %d", result.Config.WindowWidth)
	}
}

func TestLoadConfigKeybindingConflict(t *testing.T) {
	result := loadConfigFromPath(writeConfigFile(t, `
[keybindings]
next = ["KeyX"]
previous = ["KeyX"]
`))

	if result.Status != "Warning" {
		t.Fatalf("expected status Warning, got %s", result.Status)
	}
	// Conflicting bindings are replaced wholesale by the defaults
	defaults := GetDefaultKeybindings()
	if got := result.Config.Keybindings["next"]; len(got) != len(defaults["next"]) {
		t.Errorf("expected default next bindings, got %v", got)
	}
}

func TestLoadConfigPartialKeybindings(t *testing.T) {
	result := loadConfigFromPath(writeConfigFile(t, `
[keybindings]
next = ["KeyJ"]
`))

	if result.Status != "OK" {
		t.Fatalf("expected status OK, got %s (%v)", result.Status, result.Warnings)
	}
	if got := result.Config.Keybindings["next"]; len(got) != 1 || got[0] != "KeyJ" {
		t.Errorf("expected overridden next binding, got %v", got)
	}
	// Unmentioned actions keep their defaults
	if got := result.Config.Keybindings["previous"]; len(got) == 0 {
		t.Error("previous binding should fall back to default")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	config := defaultConfig()
	config.WindowWidth = 1024
	config.WindowHeight = 768
	config.WrapNavigation = true
	config.SortMethod = SortEntryOrder

	saveConfigToPath(config, path)

	result := loadConfigFromPath(path)
	if result.Status != "OK" {
		t.Fatalf("expected status OK, got %s (%v)", result.Status, result.Warnings)
	}
	loaded := result.Config
	if loaded.WindowWidth != 1024 || loaded.WindowHeight != 768 {
		t.Errorf("expected 1024x768, got %dx%d", loaded.WindowWidth, loaded.WindowHeight)
	}
	if !loaded.WrapNavigation {
		t.Error("wrap navigation lost in round trip")
	}
	if loaded.SortMethod != SortEntryOrder {
		t.Errorf("sort method lost in round trip, got %d", loaded.SortMethod)
	}
}

func TestSaveConfigRejectsInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	config := defaultConfig()
	config.WindowWidth = 10
	saveConfigToPath(config, path)

	if _, err := os.Stat(path); err == nil {
		t.Error("config with invalid window size should not be written")
	}
}
