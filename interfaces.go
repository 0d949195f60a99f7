package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Status message display duration
	statusMessageDuration = 2 * time.Second
)

// RenderState provides read-only access to game state for the renderer
type RenderState interface {
	// Rendering data
	GetCurrentImage() *ebiten.Image
	GetViewTransform() ViewTransform
	IsCheckerBackground() bool

	// UI state
	IsShowingHelp() bool
	IsShowingInfo() bool
	GetStatusMessage() string
	GetStatusMessageTime() time.Time

	// Display data
	GetCurrentPath() string
	GetCurrentIndex() int
	GetTotalCount() int
	GetSortMethod() int
	GetFontSize() float64
	GetConfigStatus() ConfigLoadResult
	GetKeybindings() map[string][]string
	GetMousebindings() map[string][]string
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Application control
	Exit()

	// Display toggles
	ToggleHelp()
	ToggleInfo()
	ToggleFullscreen()
	ToggleChecker()

	// Settings
	CycleSortMethod()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	JumpFirst()
	JumpLast()

	// Zoom and pan
	ZoomIn()
	ZoomOut()
	ZoomReset()
	ZoomFit()
	WheelZoom(delta float64, cursor Point)
	DragStart(p Point)
	DragMove(p Point)
	DragEnd()
}

// InputState provides read-only access to input-related state
type InputState interface {
	// ViewActive reports whether an image is loaded and gestures apply
	ViewActive() bool
}
