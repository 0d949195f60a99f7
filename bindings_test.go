package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testBindingSet() *BindingSet {
	return NewBindingSet(GetDefaultKeybindings(), GetDefaultMousebindings(), defaultConfig().Mouse)
}

func TestParseKeyChord(t *testing.T) {
	b := testBindingSet()

	tests := []struct {
		name     string
		keyStr   string
		valid    bool
		expected KeyChord
	}{
		{"Plain key", "Escape", true, KeyChord{Key: ebiten.KeyEscape}},
		{"Letter key", "KeyF", true, KeyChord{Key: ebiten.KeyF}},
		{"Shift modifier", "Shift+KeyS", true, KeyChord{Key: ebiten.KeyS, Shift: true}},
		{"Stacked modifiers", "Ctrl+Alt+KeyX", true, KeyChord{Key: ebiten.KeyX, Ctrl: true, Alt: true}},
		{"Lowercase modifier", "shift+Slash", true, KeyChord{Key: ebiten.KeySlash, Shift: true}},
		{"Unknown key", "KeyÜ", false, KeyChord{}},
		{"Bare modifier", "Shift", false, KeyChord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, valid := b.parseKeyChord(tt.keyStr)
			if valid != tt.valid {
				t.Fatalf("parseKeyChord(%s) valid = %v, want %v", tt.keyStr, valid, tt.valid)
			}
			if valid && *chord != tt.expected {
				t.Errorf("parseKeyChord(%s) = %+v, want %+v", tt.keyStr, *chord, tt.expected)
			}
		})
	}
}

func TestParseMouseChord(t *testing.T) {
	b := testBindingSet()

	tests := []struct {
		name     string
		mouseStr string
		valid    bool
		expected MouseChord
	}{
		{"Middle click", "MiddleClick", true, MouseChord{Button: ebiten.MouseButtonMiddle}},
		{"Double click", "DoubleLeftClick", true, MouseChord{Button: ebiten.MouseButtonLeft, Double: true}},
		{"Side buttons", "Forward", true, MouseChord{Button: ebiten.MouseButton4}},
		{"With modifier", "Shift+RightClick", true, MouseChord{Button: ebiten.MouseButtonRight, Shift: true}},
		{"Unknown action", "TripleClick", false, MouseChord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, valid := b.parseMouseChord(tt.mouseStr)
			if valid != tt.valid {
				t.Fatalf("parseMouseChord(%s) valid = %v, want %v", tt.mouseStr, valid, tt.valid)
			}
			if valid && *chord != tt.expected {
				t.Errorf("parseMouseChord(%s) = %+v, want %+v", tt.mouseStr, *chord, tt.expected)
			}
		})
	}
}

func TestValidateKeyString(t *testing.T) {
	validKeys := getValidKeyNames()

	tests := []struct {
		keyStr string
		ok     bool
	}{
		{"KeyA", true},
		{"Shift+KeyA", true},
		{"ctrl+alt+Home", true},
		{"Meta+KeyA", false},
		{"KeyAA", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.keyStr, func(t *testing.T) {
			err := validateKeyString(tt.keyStr, validKeys)
			if (err == nil) != tt.ok {
				t.Errorf("validateKeyString(%s) error = %v, want ok = %v", tt.keyStr, err, tt.ok)
			}
		})
	}
}

func TestValidateMouseString(t *testing.T) {
	tests := []struct {
		mouseStr string
		ok       bool
	}{
		{"LeftClick", true},
		{"DoubleMiddleClick", true},
		{"Alt+Back", true},
		{"WheelUp", false},
		{"Meta+LeftClick", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mouseStr, func(t *testing.T) {
			err := validateMouseString(tt.mouseStr)
			if (err == nil) != tt.ok {
				t.Errorf("validateMouseString(%s) error = %v, want ok = %v", tt.mouseStr, err, tt.ok)
			}
		})
	}
}

func TestDefaultBindingsAreValid(t *testing.T) {
	if err := validateKeybindings(GetDefaultKeybindings()); err != nil {
		t.Errorf("default keybindings invalid: %v", err)
	}
	if err := validateMousebindings(GetDefaultMousebindings()); err != nil {
		t.Errorf("default mousebindings invalid: %v", err)
	}
}

func TestEveryActionHasDefinition(t *testing.T) {
	descriptions := GetActionDescriptions()
	for action := range GetDefaultKeybindings() {
		if descriptions[action] == "" {
			t.Errorf("action %s has no description", action)
		}
	}
}

func TestExecuteActionUnknown(t *testing.T) {
	if executeAction("warp_drive", nil) {
		t.Error("unknown action should not execute")
	}
}
