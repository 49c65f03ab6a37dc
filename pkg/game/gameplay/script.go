// Package gameplay drives the on-screen text from game events and player intents.
package gameplay

import (
	"errors"
	"fmt"
	"strconv"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

// Script command errors
var (
	ErrUnknownKey  = errors.New("unknown text key")
	ErrBadDuration = errors.New("duration must be positive")
	ErrBadStyle    = errors.New("no big text style for alignment")
)

// keyChecker is implemented by text sources that can tell a missing key from
// a translated one.
type keyChecker interface {
	Has(key string) bool
}

func resolve(g *state.Game, key string, args ...string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key: %w", ErrUnknownKey)
	}
	if kc, ok := g.Texts.(keyChecker); ok && !kc.Has(key) {
		return "", fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	text := screentext.Format(g.Text(key), args...)
	if text == "" {
		return "", fmt.Errorf("%q resolves to empty text: %w", key, ErrUnknownKey)
	}
	return text, nil
}

func checkDuration(key string, durationMS int) error {
	if durationMS <= 0 {
		return fmt.Errorf("%q for %dms: %w", key, durationMS, ErrBadDuration)
	}
	return nil
}

// PrintBig shows key as a big banner. An earlier banner with the same key is
// replaced.
func PrintBig(g *state.Game, key string, durationMS int, alignment screentext.Alignment) error {
	return printBig(g, key, durationMS, alignment)
}

// PrintBigWithNumber is PrintBig with number substituted into the template.
func PrintBigWithNumber(g *state.Game, key string, number, durationMS int, alignment screentext.Alignment) error {
	return printBig(g, key, durationMS, alignment, strconv.Itoa(number))
}

func printBig(g *state.Game, key string, durationMS int, alignment screentext.Alignment, args ...string) error {
	if !g.Styles.Big.Has(alignment) {
		return fmt.Errorf("%q with alignment %d: %w", key, alignment, ErrBadStyle)
	}
	if err := checkDuration(key, durationMS); err != nil {
		return err
	}
	text, err := resolve(g, key, args...)
	if err != nil {
		return err
	}
	g.Screen.Remove(screentext.Big, key)
	g.Screen.AddText(screentext.Big, g.Styles.MakeBig(key, text, alignment, durationMS))
	return nil
}

// PrintNow shows key as a high priority notice, replacing an earlier notice
// with the same key.
func PrintNow(g *state.Game, key string, durationMS int) error {
	return printNow(g, key, durationMS)
}

// PrintWithNumberNow is PrintNow with number substituted into the template.
func PrintWithNumberNow(g *state.Game, key string, number, durationMS int) error {
	return printNow(g, key, durationMS, strconv.Itoa(number))
}

func printNow(g *state.Game, key string, durationMS int, args ...string) error {
	if err := checkDuration(key, durationMS); err != nil {
		return err
	}
	text, err := resolve(g, key, args...)
	if err != nil {
		return err
	}
	g.Screen.Remove(screentext.HighPriority, key)
	g.Screen.AddText(screentext.HighPriority, g.Styles.MakeHighPriority(key, text, durationMS))
	return nil
}

// PrintHelp replaces the help box with key.
func PrintHelp(g *state.Game, key string) error {
	text, err := resolve(g, key)
	if err != nil {
		return err
	}
	g.Screen.Clear(screentext.Help)
	g.Screen.AddText(screentext.Help, g.Styles.MakeHelp(key, text))
	return nil
}

// ClearHelp removes the help box.
func ClearHelp(g *state.Game) {
	g.Screen.Clear(screentext.Help)
}

// ClearPrints removes every high priority notice.
func ClearPrints(g *state.Game) {
	g.Screen.Clear(screentext.HighPriority)
}

// ClearThisPrint removes the high priority notices shown for key.
func ClearThisPrint(g *state.Game, key string) {
	g.Screen.Remove(screentext.HighPriority, key)
}

// ClearThisBigPrint removes the banners shown for key.
func ClearThisBigPrint(g *state.Game, key string) {
	g.Screen.Remove(screentext.Big, key)
}

// ClearAllPrints empties every category.
func ClearAllPrints(g *state.Game) {
	g.Screen.ClearAll()
}
