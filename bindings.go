package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// getKeyMapping returns a mapping from string keys to Ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	return map[string]ebiten.Key{
		// Letters
		"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
		"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
		"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
		"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
		"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
		"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
		"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,

		// Numbers
		"Key0": ebiten.Key0, "Key1": ebiten.Key1, "Key2": ebiten.Key2, "Key3": ebiten.Key3,
		"Key4": ebiten.Key4, "Key5": ebiten.Key5, "Key6": ebiten.Key6, "Key7": ebiten.Key7,
		"Key8": ebiten.Key8, "Key9": ebiten.Key9,

		// Special keys
		"Space":      ebiten.KeySpace,
		"Backspace":  ebiten.KeyBackspace,
		"Enter":      ebiten.KeyEnter,
		"Escape":     ebiten.KeyEscape,
		"Tab":        ebiten.KeyTab,
		"Home":       ebiten.KeyHome,
		"End":        ebiten.KeyEnd,
		"PageUp":     ebiten.KeyPageUp,
		"PageDown":   ebiten.KeyPageDown,
		"ArrowUp":    ebiten.KeyArrowUp,
		"ArrowDown":  ebiten.KeyArrowDown,
		"ArrowLeft":  ebiten.KeyArrowLeft,
		"ArrowRight": ebiten.KeyArrowRight,

		// Punctuation
		"Comma":     ebiten.KeyComma,
		"Period":    ebiten.KeyPeriod,
		"Slash":     ebiten.KeySlash,
		"Semicolon": ebiten.KeySemicolon,
		"Quote":     ebiten.KeyQuote,
		"Minus":     ebiten.KeyMinus,
		"Equal":     ebiten.KeyEqual,

		// Numpad
		"Numpad0":     ebiten.KeyNumpad0,
		"Numpad1":     ebiten.KeyNumpad1,
		"Numpad2":     ebiten.KeyNumpad2,
		"Numpad3":     ebiten.KeyNumpad3,
		"Numpad4":     ebiten.KeyNumpad4,
		"Numpad5":     ebiten.KeyNumpad5,
		"Numpad6":     ebiten.KeyNumpad6,
		"Numpad7":     ebiten.KeyNumpad7,
		"Numpad8":     ebiten.KeyNumpad8,
		"Numpad9":     ebiten.KeyNumpad9,
		"NumpadEnter": ebiten.KeyNumpadEnter,
	}
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3, // Back button (side button)
		"Forward":     ebiten.MouseButton4, // Forward button (side button)
	}
}

// getValidKeyNames returns a set of valid key names for config validation
func getValidKeyNames() map[string]bool {
	valid := make(map[string]bool)
	for name := range getKeyMapping() {
		valid[name] = true
	}
	return valid
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 {
		return fmt.Errorf("empty key string")
	}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	// Check modifiers
	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// validateMouseString validates a single mouse chord string format
func validateMouseString(mouseStr string) error {
	parts := strings.Split(mouseStr, "+")
	if len(parts) == 0 {
		return fmt.Errorf("empty mouse string")
	}

	actionName := parts[len(parts)-1]
	baseName := strings.TrimPrefix(actionName, "Double")
	if _, exists := getMouseMapping()[baseName]; !exists {
		return fmt.Errorf("unknown mouse action: %s", actionName)
	}

	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// KeyChord represents a key with optional modifiers
type KeyChord struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// MouseChord represents a mouse button press with optional modifiers
type MouseChord struct {
	Button ebiten.MouseButton
	Double bool
	Shift  bool
	Ctrl   bool
	Alt    bool
}

// doubleClickTracker tracks double-click state across frames
type doubleClickTracker struct {
	lastClickTime   time.Time
	lastClickButton ebiten.MouseButton
	clickCount      int
}

// BindingSet resolves configured key and mouse chords to action triggers.
// The wheel and left-drag gestures are not bindable; they are handled
// directly by the input handler.
type BindingSet struct {
	keybindings   map[string][]string
	mousebindings map[string][]string
	keyMapping    map[string]ebiten.Key
	mouseMapping  map[string]ebiten.MouseButton
	settings      MouseSettings
	doubleClick   doubleClickTracker
}

// NewBindingSet creates a BindingSet from the configured binding maps
func NewBindingSet(keybindings, mousebindings map[string][]string, settings MouseSettings) *BindingSet {
	return &BindingSet{
		keybindings:   keybindings,
		mousebindings: mousebindings,
		keyMapping:    getKeyMapping(),
		mouseMapping:  getMouseMapping(),
		settings:      settings,
		doubleClick: doubleClickTracker{
			lastClickTime: time.Now(),
		},
	}
}

// parseKeyChord parses a key string like "Shift+KeyB" into a KeyChord
func (b *BindingSet) parseKeyChord(keyStr string) (*KeyChord, bool) {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 {
		return nil, false
	}

	chord := &KeyChord{}

	keyName := parts[len(parts)-1]
	key, exists := b.keyMapping[keyName]
	if !exists {
		return nil, false
	}
	chord.Key = key

	for i := 0; i < len(parts)-1; i++ {
		switch strings.ToLower(parts[i]) {
		case "shift":
			chord.Shift = true
		case "ctrl":
			chord.Ctrl = true
		case "alt":
			chord.Alt = true
		}
	}

	return chord, true
}

// parseMouseChord parses a mouse string like "Shift+LeftClick" or
// "DoubleLeftClick" into a MouseChord
func (b *BindingSet) parseMouseChord(mouseStr string) (*MouseChord, bool) {
	parts := strings.Split(mouseStr, "+")
	if len(parts) == 0 {
		return nil, false
	}

	chord := &MouseChord{}

	actionName := parts[len(parts)-1]
	if strings.HasPrefix(actionName, "Double") {
		chord.Double = true
		actionName = strings.TrimPrefix(actionName, "Double")
	}
	button, exists := b.mouseMapping[actionName]
	if !exists {
		return nil, false
	}
	chord.Button = button

	for i := 0; i < len(parts)-1; i++ {
		switch strings.ToLower(parts[i]) {
		case "shift":
			chord.Shift = true
		case "ctrl":
			chord.Ctrl = true
		case "alt":
			chord.Alt = true
		}
	}

	return chord, true
}

// modifiersMatch checks the exact modifier state: wanted modifiers held,
// unwanted modifiers released.
func modifiersMatch(shift, ctrl, alt bool) bool {
	if shift != ebiten.IsKeyPressed(ebiten.KeyShift) {
		return false
	}
	if ctrl != ebiten.IsKeyPressed(ebiten.KeyControl) {
		return false
	}
	if alt != ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}
	return true
}

func (b *BindingSet) isKeyChordPressed(chord *KeyChord) bool {
	if !inpututil.IsKeyJustPressed(chord.Key) {
		return false
	}
	return modifiersMatch(chord.Shift, chord.Ctrl, chord.Alt)
}

func (b *BindingSet) isMouseChordTriggered(chord *MouseChord) bool {
	if !b.settings.Enabled {
		return false
	}
	if !modifiersMatch(chord.Shift, chord.Ctrl, chord.Alt) {
		return false
	}
	if chord.Double {
		return b.checkDoubleClick(chord.Button)
	}
	return inpututil.IsMouseButtonJustPressed(chord.Button)
}

// checkDoubleClick checks if a double-click occurred for the given button
func (b *BindingSet) checkDoubleClick(button ebiten.MouseButton) bool {
	if !inpututil.IsMouseButtonJustPressed(button) {
		return false
	}

	now := time.Now()
	sinceLast := now.Sub(b.doubleClick.lastClickTime)

	if b.doubleClick.lastClickButton == button &&
		sinceLast <= time.Duration(b.settings.DoubleClickTime)*time.Millisecond {
		b.doubleClick.clickCount++
		if b.doubleClick.clickCount == 2 {
			b.doubleClick.clickCount = 0
			b.doubleClick.lastClickTime = now
			return true
		}
	} else {
		b.doubleClick.clickCount = 1
		b.doubleClick.lastClickButton = button
	}

	b.doubleClick.lastClickTime = now
	return false
}

// KeyActionTriggered checks if any keybinding for the action fired this frame
func (b *BindingSet) KeyActionTriggered(action string) bool {
	for _, keyStr := range b.keybindings[action] {
		chord, valid := b.parseKeyChord(keyStr)
		if valid && b.isKeyChordPressed(chord) {
			return true
		}
	}
	return false
}

// MouseActionTriggered checks if any mouse binding for the action fired this frame
func (b *BindingSet) MouseActionTriggered(action string) bool {
	for _, mouseStr := range b.mousebindings[action] {
		chord, valid := b.parseMouseChord(mouseStr)
		if valid && b.isMouseChordTriggered(chord) {
			return true
		}
	}
	return false
}

// ActionTriggered checks both key and mouse bindings for the action
func (b *BindingSet) ActionTriggered(action string) bool {
	return b.KeyActionTriggered(action) || b.MouseActionTriggered(action)
}

// Keybindings returns the current keybindings map (for display purposes)
func (b *BindingSet) Keybindings() map[string][]string {
	return b.keybindings
}

// Mousebindings returns the current mouse bindings map (for display purposes)
func (b *BindingSet) Mousebindings() map[string][]string {
	return b.mousebindings
}

// Settings returns the current mouse settings
func (b *BindingSet) Settings() MouseSettings {
	return b.settings
}
