package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/engine/terminal"
	"stationhud/pkg/game/renderer"
	"stationhud/pkg/game/state"
)

// Lines needed below the HUD area:
// - Status bar (1)
// - Messages pane (header + 5 messages + footer = 7)
const messagesPaneHeight = 8

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorSubtle color.Style
	colorMoney  color.Style
	colorBig    color.Style

	screenWidth  float64
	screenHeight float64

	out io.Writer
}

// New creates a new TUI renderer for a virtual screen of the given size
func New(screenWidth, screenHeight int) *TUIRenderer {
	return &TUIRenderer{
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
		out:          os.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorMoney = color.Style{color.FgGreen, color.OpBold}
	t.colorBig = color.Style{color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, msg+"\r\n")
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.GetSize()
	return rows, cols
}

// Close is a no-op; the input source restores the terminal
func (t *TUIRenderer) Close() {}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	rows, cols := t.GetViewportSize()
	t.Clear()
	// Raw mode needs explicit carriage returns
	fmt.Fprint(t.out, strings.Join(t.Compose(g, rows, cols), "\r\n"))
}

// Compose returns the frame as terminal lines: the HUD area, the status bar
// and the messages pane.
func (t *TUIRenderer) Compose(g *state.Game, rows, cols int) []string {
	hudRows := rows - messagesPaneHeight
	if hudRows < 1 {
		hudRows = 1
	}

	lines := make([]string, hudRows)
	grid := renderer.Grid{Rows: hudRows, Cols: cols, ScreenWidth: t.screenWidth, ScreenHeight: t.screenHeight}
	for _, p := range grid.PlaceAll(g) {
		lines[p.Row] = terminal.PadLeft(p.Col) + t.styleEntry(p)
	}

	lines = append(lines, t.colorMoney.Sprintf("$%d", g.Money))
	return append(lines, t.messagesPane(g, cols)...)
}

func (t *TUIRenderer) styleEntry(p renderer.Placement) string {
	c := p.Entry.Colour
	s := color.RGB(c.R, c.G, c.B).Sprint(p.Text)
	if p.Category == screentext.Big {
		return t.colorBig.Sprint(s)
	}
	return s
}

// messagesPane renders the messages log pane
func (t *TUIRenderer) messagesPane(g *state.Game, width int) []string {
	// "Messages" label is 8 chars, plus 2 spaces = 10, so we need (width - 10) / 2 dashes on each side
	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	out := []string{t.colorSubtle.Sprint(leftDashes + label + rightDashes)}
	if len(g.Messages) == 0 {
		out = append(out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			out = append(out, "  "+msg)
		}
	}
	return append(out, t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
}
