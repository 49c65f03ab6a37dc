package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "stationhud/pkg/engine/input"
)

// Gamepad face buttons in polling order.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// other controllers may report different indices.
var gamepadCodes = []struct {
	button ebiten.GamepadButton
	code   string
}{
	{ebiten.GamepadButton0, "gamepad_a"},
	{ebiten.GamepadButton1, "gamepad_b"},
	{ebiten.GamepadButton2, "gamepad_x"},
	{ebiten.GamepadButton3, "gamepad_y"},
	{ebiten.GamepadButton7, "gamepad_start"},
}

// keyCode maps the keys that do not produce typed characters onto binding
// codes. Printable keys arrive through ebiten.AppendInputChars instead.
func keyCode(k ebiten.Key, ctrl bool) string {
	switch k {
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeyBackspace:
		return "backspace"
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyC:
		if ctrl {
			return "ctrl_c"
		}
	}
	return ""
}

// collectIntents reads this frame's typed characters, key presses and gamepad
// buttons and maps them through the tiered bindings.
func (e *EbitenRenderer) collectIntents() []engineinput.Intent {
	var intents []engineinput.Intent
	add := func(device engineinput.Device, code string) {
		if code == "" {
			return
		}
		if intent := engineinput.IntentFor(device, code); intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		add(engineinput.DeviceKeyboard, string(r))
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		add(engineinput.DeviceKeyboard, keyCode(k, ctrl))
	}

	e.gamepadIDs = ebiten.AppendGamepadIDs(e.gamepadIDs[:0])
	for _, id := range e.gamepadIDs {
		for _, gc := range gamepadCodes {
			if inpututil.IsGamepadButtonJustPressed(id, gc.button) {
				add(engineinput.DeviceGamepad, gc.code)
			}
		}
	}

	return intents
}

// applyZoom consumes zoom intents and returns the rest for the game, and
// whether the zoom level changed.
func (e *EbitenRenderer) applyZoom(intents []engineinput.Intent) ([]engineinput.Intent, bool) {
	rest := intents[:0]
	changed := false
	for _, in := range intents {
		switch in.Action {
		case engineinput.ActionZoomIn:
			if e.zoom < maxZoom {
				e.zoom++
				changed = true
			}
		case engineinput.ActionZoomOut:
			if e.zoom > minZoom {
				e.zoom--
				changed = true
			}
		default:
			rest = append(rest, in)
		}
	}
	return rest, changed
}
