package gameplay

import (
	"log"
	"strconv"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

// Demo payouts and display times
const (
	PickupAmount    = 100
	MissionReward   = 1000
	BustedFine      = 100
	NoticeMS        = 3000
	BannerMS        = 5000
	RewardMS        = 5000
	BannerAlignment = screentext.AlignCenter
	RewardAlignment = screentext.AlignRight
)

// PickUpMoney credits amount and shows the pickup notice.
func PickUpMoney(g *state.Game, amount int) {
	g.Money += amount
	report(PrintWithNumberNow(g, "NOTICE_PICKUP_MONEY", amount, NoticeMS))
	logMessage(g, "LOG_MONEY", strconv.Itoa(g.Money))
}

// Busted shows the arrest banner and takes the fine.
func Busted(g *state.Game) {
	fine := min(BustedFine, g.Money)
	g.Money -= fine

	report(PrintBig(g, "BIG_BUSTED", BannerMS, BannerAlignment))
	if fine > 0 {
		report(PrintWithNumberNow(g, "NOTICE_BUSTED_FINE", fine, NoticeMS))
	}
	logMessage(g, "BIG_BUSTED")
}

// Wasted shows the death banner.
func Wasted(g *state.Game) {
	report(PrintBig(g, "BIG_WASTED", BannerMS, BannerAlignment))
	logMessage(g, "BIG_WASTED")
}

// MissionPassed shows the mission banner with the reward underneath.
func MissionPassed(g *state.Game, reward int) {
	g.Money += reward
	report(PrintBig(g, "BIG_MISSION_PASSED", BannerMS, BannerAlignment))
	report(PrintBigWithNumber(g, "BIG_REWARD", reward, RewardMS, RewardAlignment))
	logMessage(g, "BIG_MISSION_PASSED")
	logMessage(g, "LOG_MONEY", strconv.Itoa(g.Money))
}

func report(err error) {
	if err != nil {
		log.Printf("Cannot print: %v", err)
	}
}

// logMessage resolves key and appends it to the message log.
func logMessage(g *state.Game, key string, args ...string) {
	g.AddMessage(screentext.Format(g.Text(key), args...))
}
