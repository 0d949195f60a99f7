package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// gestureThreshold is the minimum horizontal right-drag travel, in pixels,
// that counts as a navigation gesture.
const gestureThreshold = 48.0

// gestureState tracks an in-progress right-button drag
type gestureState struct {
	active bool
	start  Point
}

// InputHandler handles all keyboard and mouse input processing
type InputHandler struct {
	actions  InputActions
	state    InputState
	bindings *BindingSet
	gesture  gestureState
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(actions InputActions, state InputState, bindings *BindingSet) *InputHandler {
	return &InputHandler{
		actions:  actions,
		state:    state,
		bindings: bindings,
	}
}

// HandleInput processes all input for the current frame.
// Returns true if any input was processed, false otherwise.
func (h *InputHandler) HandleInput() bool {
	inputProcessed := false

	inputProcessed = h.handleBoundActions() || inputProcessed
	inputProcessed = h.handleWheel() || inputProcessed
	inputProcessed = h.handleDrag() || inputProcessed
	inputProcessed = h.handleGesture() || inputProcessed

	return inputProcessed
}

func (h *InputHandler) handleBoundActions() bool {
	inputProcessed := false
	for _, def := range actionDefinitions {
		if h.bindings.ActionTriggered(def.Name) {
			if executeAction(def.Name, h.actions) {
				inputProcessed = true
			}
		}
	}
	return inputProcessed
}

// handleWheel applies cursor-anchored zoom for vertical wheel movement.
func (h *InputHandler) handleWheel() bool {
	if !h.state.ViewActive() {
		return false
	}
	settings := h.bindings.Settings()
	if !settings.Enabled {
		return false
	}

	_, wheelY := ebiten.Wheel()
	if wheelY == 0 {
		return false
	}
	if settings.WheelInverted {
		wheelY = -wheelY
	}

	cx, cy := ebiten.CursorPosition()
	h.actions.WheelZoom(wheelY, Point{X: float64(cx), Y: float64(cy)})
	return true
}

// handleDrag maps the left button to pan gestures.
func (h *InputHandler) handleDrag() bool {
	if !h.state.ViewActive() {
		return false
	}
	settings := h.bindings.Settings()
	if !settings.Enabled || !settings.DragPan {
		return false
	}

	cx, cy := ebiten.CursorPosition()
	p := Point{X: float64(cx), Y: float64(cy)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.actions.DragStart(p)
		return true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.actions.DragEnd()
		return true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.actions.DragMove(p)
		return true
	}

	return false
}

// gestureDirection classifies a completed right-drag by its dominant axis:
// -1 for a leftward drag (previous), 1 for rightward (next), 0 when the
// travel is too short or mostly vertical.
func gestureDirection(start, end Point) int {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if math.Abs(dx) < gestureThreshold || math.Abs(dx) <= math.Abs(dy) {
		return 0
	}
	if dx < 0 {
		return -1
	}
	return 1
}

// handleGesture maps horizontal right-button drags to folder navigation.
func (h *InputHandler) handleGesture() bool {
	if !h.state.ViewActive() {
		h.gesture.active = false
		return false
	}
	settings := h.bindings.Settings()
	if !settings.Enabled || !settings.GestureNav {
		return false
	}

	cx, cy := ebiten.CursorPosition()
	p := Point{X: float64(cx), Y: float64(cy)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		h.gesture = gestureState{active: true, start: p}
		return true
	}
	if !h.gesture.active {
		return false
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		h.gesture.active = false
		switch gestureDirection(h.gesture.start, p) {
		case -1:
			h.actions.NavigatePrevious()
			return true
		case 1:
			h.actions.NavigateNext()
			return true
		}
	}
	return false
}
