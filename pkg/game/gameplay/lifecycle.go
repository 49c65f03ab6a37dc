package gameplay

import (
	engineinput "stationhud/pkg/engine/input"
	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

// BuildGame creates a new game instance and shows the first hint.
func BuildGame(texts state.TextSource, styles screentext.Styles) *state.Game {
	g := state.NewGame(texts, styles)
	for _, key := range DefaultHints {
		g.AddHint(key)
	}

	logMessage(g, "LOG_WELCOME")
	ShowHint(g)

	return g
}

// Step applies the intents gathered since the last frame, then ages the
// screen text by deltaSeconds. It reports whether the player asked to quit.
func Step(g *state.Game, intents []engineinput.Intent, deltaSeconds float64) bool {
	for _, in := range intents {
		ProcessIntent(g, in)
		if g.Quit {
			return true
		}
	}
	g.Tick(deltaSeconds)
	return false
}
