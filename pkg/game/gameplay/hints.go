package gameplay

import (
	"log"

	"stationhud/pkg/game/state"
)

// DefaultHints are the help prompts offered in order, each at most once.
var DefaultHints = []string{
	"HELP_PICKUP",
	"HELP_BANNERS",
	"HELP_DISMISS",
	"HELP_QUIT",
}

// ShowHint puts the next unseen help prompt in the help box.
func ShowHint(g *state.Game) {
	key, ok := g.NextHint()
	if !ok {
		logMessage(g, "LOG_NO_HINTS")
		return
	}
	if err := PrintHelp(g, key); err != nil {
		log.Printf("Cannot show hint: %v", err)
	}
}
