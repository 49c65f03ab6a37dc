// Package cell renders the screen text on a tcell screen and turns its key
// events into intents.
package cell

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	engineinput "stationhud/pkg/engine/input"
	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/renderer"
	"stationhud/pkg/game/state"
)

// Rows reserved under the HUD area for the wallet and the latest message.
const footerRows = 2

// CellRenderer draws on a tcell.Screen.
type CellRenderer struct {
	screen       tcell.Screen
	screenWidth  float64
	screenHeight float64

	styleSubtle tcell.Style
	styleMoney  tcell.Style

	intents chan engineinput.Intent
}

// New creates a renderer for a virtual screen of the given size. A nil screen
// is replaced by the real terminal in Init.
func New(screen tcell.Screen, screenWidth, screenHeight int) *CellRenderer {
	return &CellRenderer{
		screen:       screen,
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
		intents:      make(chan engineinput.Intent, 16),
	}
}

// Init opens the screen and starts reading key events.
func (r *CellRenderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("cannot open terminal screen: %w", err)
		}
		r.screen = s
	}
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("cannot initialise terminal screen: %w", err)
	}

	r.styleSubtle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.styleMoney = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

	r.screen.Clear()
	go r.pollLoop()
	return nil
}

// Clear blanks the screen.
func (r *CellRenderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

// ShowMessage writes msg on the bottom row.
func (r *CellRenderer) ShowMessage(msg string) {
	_, h := r.screen.Size()
	r.drawString(0, h-1, msg, tcell.StyleDefault)
	r.screen.Show()
}

// GetViewportSize returns the screen size in cells.
func (r *CellRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = r.screen.Size()
	return rows, cols
}

// Close restores the terminal and stops the event loop.
func (r *CellRenderer) Close() {
	r.screen.Fini()
}

// RenderFrame draws every live entry, the wallet and the latest message.
func (r *CellRenderer) RenderFrame(g *state.Game) {
	w, h := r.screen.Size()
	r.screen.Clear()

	grid := renderer.Grid{
		Rows:         max(h-footerRows, 1),
		Cols:         w,
		ScreenWidth:  r.screenWidth,
		ScreenHeight: r.screenHeight,
	}
	for _, p := range grid.PlaceAll(g) {
		r.drawString(p.Col, p.Row, p.Text, entryStyle(p))
	}

	if h > footerRows {
		r.drawString(0, h-2, fmt.Sprintf("$%d", g.Money), r.styleMoney)
		if n := len(g.Messages); n > 0 {
			r.drawString(0, h-1, g.Messages[n-1], r.styleSubtle)
		}
	}
	r.screen.Show()
}

func entryStyle(p renderer.Placement) tcell.Style {
	c := p.Entry.Colour
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Bold(p.Category == screentext.Big)
}

// drawString writes s from column x and returns the column after it. Wide
// runes take two cells.
func (r *CellRenderer) drawString(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		var comb []rune
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			comb = []rune{ch}
			ch = ' '
			w = 1
		}
		r.screen.SetContent(x, y, ch, comb, style)
		x += w
	}
	return x
}

// Input returns the key source fed by this screen.
func (r *CellRenderer) Input() engineinput.Source {
	return cellSource{r}
}

type cellSource struct{ r *CellRenderer }

func (s cellSource) Intents() <-chan engineinput.Intent { return s.r.intents }

// Close is a no-op; the renderer owns the screen.
func (s cellSource) Close() error { return nil }

func (r *CellRenderer) pollLoop() {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			intent := engineinput.IntentFor(engineinput.DeviceKeyboard, KeyCode(ev))
			if intent.Action == engineinput.ActionNone {
				continue
			}
			// Non-blocking send; drop input if the loop is behind
			select {
			case r.intents <- intent:
			default:
				log.Printf("Dropped %s: input queue full", engineinput.ActionName(intent.Action))
			}
		}
	}
}

// KeyCode maps a tcell key event onto the raw codes used by the bindings.
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	}
	return ""
}
