package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 400
	minHeight     = 300
)

// Display mode constants
const (
	DisplayModeFit      = "fit"
	DisplayModeOriginal = "original"
)

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateMousebindings validates the mousebindings configuration
func validateMousebindings(mousebindings map[string][]string) error {
	chordToAction := make(map[string]string)

	for action, chords := range mousebindings {
		for _, chordStr := range chords {
			if err := validateMouseString(chordStr); err != nil {
				return fmt.Errorf("invalid mouse chord '%s' for action '%s': %v", chordStr, action, err)
			}

			if existingAction, exists := chordToAction[chordStr]; exists {
				return fmt.Errorf("mouse conflict: '%s' is bound to both '%s' and '%s'", chordStr, existingAction, action)
			}
			chordToAction[chordStr] = action
		}
	}

	return nil
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Warning", "Error", "Default"
}

// MouseSettings groups the pointer-behavior options
type MouseSettings struct {
	Enabled         bool    `koanf:"enabled"`
	DoubleClickTime int     `koanf:"double_click_time"` // milliseconds
	WheelInverted   bool    `koanf:"wheel_inverted"`
	DragPan         bool    `koanf:"drag_pan"`
	GestureNav      bool    `koanf:"gesture_nav"` // right-drag navigation
	WheelZoomStep   float64 `koanf:"wheel_zoom_step"` // scale delta per wheel notch
}

type Config struct {
	WindowWidth        int                 `koanf:"window_width"`
	WindowHeight       int                 `koanf:"window_height"`
	InitialDisplayMode string              `koanf:"initial_display_mode"` // "fit" or "original"
	WrapNavigation     bool                `koanf:"wrap_navigation"`
	HelpFontSize       float64             `koanf:"help_font_size"`
	SortMethod         int                 `koanf:"sort_method"`
	Fullscreen         bool                `koanf:"fullscreen"`
	CheckerBackground  bool                `koanf:"checker_background"`
	CacheSize          int                 `koanf:"cache_size"`
	PreloadEnabled     bool                `koanf:"preload_enabled"`
	Mouse              MouseSettings       `koanf:"mouse"`
	Keybindings        map[string][]string `koanf:"keybindings"`
	Mousebindings      map[string][]string `koanf:"mousebindings"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:        defaultWidth,
		WindowHeight:       defaultHeight,
		InitialDisplayMode: DisplayModeFit,
		WrapNavigation:     false,
		HelpFontSize:       24.0,
		SortMethod:         SortSimple,
		Fullscreen:         false,
		CheckerBackground:  true,
		CacheSize:          16,
		PreloadEnabled:     true,
		Mouse: MouseSettings{
			Enabled:         true,
			DoubleClickTime: 300,
			WheelInverted:   false,
			DragPan:         true,
			GestureNav:      true,
			WheelZoomStep:   defaultZoomStep,
		},
		Keybindings:   GetDefaultKeybindings(),
		Mousebindings: GetDefaultMousebindings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "iv.toml"
	}
	return filepath.Join(homeDir, ".config", "iv", "config.toml")
}

// configPaths returns the layered config locations, later entries winning.
func configPaths() []string {
	return []string{getConfigPath(), "iv.toml"}
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPaths(configPaths())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	return loadConfigFromPaths([]string{configPath})
}

func loadConfigFromPaths(paths []string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	k := koanf.New(".")
	loaded := 0
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			log.Printf("Warning: Invalid config file %s, using defaults: %v", path, err)
			result.HasError = true
			result.Status = "Error"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
			return result
		}
		loaded++
	}

	if loaded == 0 {
		// No config file is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := k.Unmarshal("", &config); err != nil {
		log.Printf("Warning: Malformed config, using defaults: %v", err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Malformed config: %v", err))
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate display mode
	if config.InitialDisplayMode != DisplayModeFit && config.InitialDisplayMode != DisplayModeOriginal {
		result.Status = "Warning"
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown initial_display_mode %q, using %q", config.InitialDisplayMode, DisplayModeFit))
		config.InitialDisplayMode = DisplayModeFit
	}

	// Validate help font size (minimum 12px for readability)
	if config.HelpFontSize <= 12.0 {
		config.HelpFontSize = 24.0
	}

	// Validate sort method
	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortSimple
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = 16
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	// Validate wheel zoom step (factor delta per notch, at most doubling)
	if config.Mouse.WheelZoomStep <= 0 || config.Mouse.WheelZoomStep > 1 {
		config.Mouse.WheelZoomStep = defaultZoomStep
	}

	// Validate double click time (milliseconds)
	if config.Mouse.DoubleClickTime < 100 || config.Mouse.DoubleClickTime > 1000 {
		config.Mouse.DoubleClickTime = 300
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = GetDefaultKeybindings()
	} else {
		defaults := GetDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = GetDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	// Validate mousebindings the same way
	if config.Mousebindings == nil {
		config.Mousebindings = GetDefaultMousebindings()
	} else {
		defaults := GetDefaultMousebindings()
		for action, defaultChords := range defaults {
			if _, exists := config.Mousebindings[action]; !exists {
				config.Mousebindings[action] = defaultChords
			}
		}

		if err := validateMousebindings(config.Mousebindings); err != nil {
			log.Printf("Warning: Invalid mousebindings detected, using defaults: %v", err)
			config.Mousebindings = GetDefaultMousebindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Mousebinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

// getSortMethodName returns the human-readable name of a sort method
func getSortMethodName(sortMethod int) string {
	strategy := GetSortStrategy(sortMethod)
	return strategy.Name()
}

func saveConfig(config Config) {
	saveConfigToPath(config, getConfigPath())
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	m := map[string]interface{}{
		"window_width":         config.WindowWidth,
		"window_height":        config.WindowHeight,
		"initial_display_mode": config.InitialDisplayMode,
		"wrap_navigation":      config.WrapNavigation,
		"help_font_size":       config.HelpFontSize,
		"sort_method":          config.SortMethod,
		"fullscreen":           config.Fullscreen,
		"checker_background":   config.CheckerBackground,
		"cache_size":           config.CacheSize,
		"preload_enabled":      config.PreloadEnabled,
		"mouse": map[string]interface{}{
			"enabled":           config.Mouse.Enabled,
			"double_click_time": config.Mouse.DoubleClickTime,
			"wheel_inverted":    config.Mouse.WheelInverted,
			"drag_pan":          config.Mouse.DragPan,
			"gesture_nav":       config.Mouse.GestureNav,
			"wheel_zoom_step":   config.Mouse.WheelZoomStep,
		},
		"keybindings":   config.Keybindings,
		"mousebindings": config.Mousebindings,
	}

	data, err := toml.Parser().Marshal(m)
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		log.Printf("Error: Failed to create config directory: %v", err)
		return
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}
