package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "stationhud/pkg/engine/input"
	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

// StepFunc advances the game by one frame. It reports whether the game should
// stop.
type StepFunc func(g *state.Game, intents []engineinput.Intent, deltaSeconds float64) bool

// faceKey identifies a cached font face
type faceKey struct {
	font screentext.Font
	size int
}

// EbitenRenderer is the Ebiten-based graphical renderer and game loop driver
type EbitenRenderer struct {
	// Virtual screen the entry anchors are expressed in
	screenWidth  int
	screenHeight int

	// Window scale (adjustable with +/-)
	zoom int

	tps int

	// Font sources for each game font
	fontSources map[screentext.Font]*text.GoTextFaceSource

	// Cached font faces
	faces map[faceKey]*text.GoTextFace

	// Game driven from Update
	game *state.Game
	step StepFunc

	// Gamepad IDs buffer reused between frames
	gamepadIDs []ebiten.GamepadID

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
