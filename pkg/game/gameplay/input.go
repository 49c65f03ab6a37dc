package gameplay

import (
	engineinput "stationhud/pkg/engine/input"
	"stationhud/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionHint:
		ShowHint(g)

	case engineinput.ActionPickup:
		PickUpMoney(g, PickupAmount)

	case engineinput.ActionBusted:
		Busted(g)

	case engineinput.ActionWasted:
		Wasted(g)

	case engineinput.ActionMissionPassed:
		MissionPassed(g, MissionReward)

	case engineinput.ActionDismiss:
		ClearPrints(g)
		logMessage(g, "LOG_DISMISSED")

	case engineinput.ActionClearAll:
		ClearAllPrints(g)
		logMessage(g, "LOG_CLEARED")

	case engineinput.ActionQuit:
		g.Quit = true
	}

	// Zoom is handled by the renderer
}
