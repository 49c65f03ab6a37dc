package state

import (
	"github.com/zyedidia/generic/mapset"

	"stationhud/pkg/engine/screentext"
)

// TextSource resolves a string key to its display template.
type TextSource interface {
	Text(key string) string
}

// Game represents the state of the HUD demo
type Game struct {
	Screen *screentext.Manager

	Styles screentext.Styles

	Texts TextSource

	// Help prompts not shown yet, in order
	Hints []string

	ShownHints mapset.Set[string]

	Messages []string

	Money int

	Frame int // Frames stepped so far

	Quit bool
}

// NewGame creates a new game instance
func NewGame(texts TextSource, styles screentext.Styles) *Game {
	return &Game{
		Screen:     screentext.NewManager(),
		Styles:     styles,
		Texts:      texts,
		ShownHints: mapset.New[string](),
		Messages:   make([]string, 0),
	}
}

// Text resolves key through the game's text source.
func (g *Game) Text(key string) string {
	if g.Texts == nil {
		return key
	}
	return g.Texts.Text(key)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint queues a help prompt key
func (g *Game) AddHint(key string) {
	g.Hints = append(g.Hints, key)
}

// NextHint returns the first queued hint that has not been shown and marks it
// as shown.
func (g *Game) NextHint() (string, bool) {
	for len(g.Hints) > 0 {
		key := g.Hints[0]
		g.Hints = g.Hints[1:]
		if g.ShownHints.Has(key) {
			continue
		}
		g.ShownHints.Put(key)
		return key, true
	}
	return "", false
}

// Tick advances every on-screen entry by deltaSeconds.
func (g *Game) Tick(deltaSeconds float64) {
	g.Frame++
	g.Screen.Tick(deltaSeconds)
}
