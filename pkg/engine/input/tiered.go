package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Screen text triggers
	ActionHint          // Show the next help prompt
	ActionPickup        // Pick up a cash pickup (high priority notice)
	ActionBusted        // Big "BUSTED" banner
	ActionWasted        // Big "WASTED" banner
	ActionMissionPassed // Big "MISSION PASSED" banner with reward
	ActionDismiss       // Remove the pickup notices
	ActionClearAll      // Clear every queue

	// Meta / UI
	ActionQuit
	ActionZoomIn  // Zoom in (increase font size)
	ActionZoomOut // Zoom out (decrease font size)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "GamepadDPadUp").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reservedCodes can never be rebound or unbound.
var reservedCodes = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, c := range []string{"q", "escape", "ctrl_c"} {
		s.Put(c)
	}
	return s
}()

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"?":    ActionHint,
	"h":    ActionHint,
	"hint": ActionHint,

	"m":     ActionPickup,
	"$":     ActionPickup,
	"enter": ActionPickup,

	"b": ActionBusted,
	"w": ActionWasted,
	"p": ActionMissionPassed,

	"x":         ActionDismiss,
	"backspace": ActionDismiss,
	"c":         ActionClearAll,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Zoom (Ebiten backend)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	// Controller/gamepad specific bindings
	"gamepad_a":     ActionPickup,
	"gamepad_x":     ActionHint,
	"gamepad_y":     ActionMissionPassed,
	"gamepad_b":     ActionDismiss,
	"gamepad_start": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a raw code through every layer.
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionHint:
		return "Hint"
	case ActionPickup:
		return "Pick Up Cash"
	case ActionBusted:
		return "Busted"
	case ActionWasted:
		return "Wasted"
	case ActionMissionPassed:
		return "Mission Passed"
	case ActionDismiss:
		return "Dismiss Notices"
	case ActionClearAll:
		return "Clear Screen"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes.Has(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes.Has(code) {
		bindings[code] = action
	}
}
