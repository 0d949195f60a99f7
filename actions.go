package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name        string
	Keys        []string
	MouseChords []string
	Description string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Quit application"},
	{"help", []string{"Shift+Slash"}, []string{}, "Show/hide help"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide info display"},
	{"next", []string{"ArrowRight", "Space"}, []string{"Forward"}, "Next image in folder"},
	{"previous", []string{"ArrowLeft", "Backspace"}, []string{"Back"}, "Previous image in folder"},
	{"first", []string{"Home"}, []string{}, "First image in folder"},
	{"last", []string{"End"}, []string{}, "Last image in folder"},
	{"fullscreen", []string{"Enter"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},
	{"cycle_sort", []string{"Shift+KeyS"}, []string{}, "Cycle sort method (Natural/Simple/Entry)"},
	{"toggle_checker", []string{"KeyC"}, []string{}, "Toggle checkerboard backdrop"},

	// Zoom actions; the wheel is hard-wired to cursor-anchored zoom and
	// left-drag to pan, so neither appears here.
	{"zoom_in", []string{"Equal", "Shift+Equal"}, []string{}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, []string{}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, []string{}, "Reset to 100% zoom"},
	{"zoom_fit", []string{"KeyF"}, []string{"MiddleClick"}, "Fit image to window"},
}

// executeAction dispatches a named action to the InputActions interface.
// Returns false for unknown actions.
func executeAction(action string, a InputActions) bool {
	switch action {
	case "exit":
		a.Exit()
	case "help":
		a.ToggleHelp()
	case "info":
		a.ToggleInfo()
	case "next":
		a.NavigateNext()
	case "previous":
		a.NavigatePrevious()
	case "first":
		a.JumpFirst()
	case "last":
		a.JumpLast()
	case "fullscreen":
		a.ToggleFullscreen()
	case "cycle_sort":
		a.CycleSortMethod()
	case "toggle_checker":
		a.ToggleChecker()
	case "zoom_in":
		a.ZoomIn()
	case "zoom_out":
		a.ZoomOut()
	case "zoom_reset":
		a.ZoomReset()
	case "zoom_fit":
		a.ZoomFit()
	default:
		return false
	}

	return true
}

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseChords
	}
	return mousebindings
}
