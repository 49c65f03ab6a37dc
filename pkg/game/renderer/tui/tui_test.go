package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

func newRenderer(t *testing.T) *TUIRenderer {
	t.Helper()
	r := New(640, 480)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = color.ClearCode(l)
	}
	return out
}

func TestCompose_PlacesEntries(t *testing.T) {
	r := newRenderer(t)
	g := state.NewGame(nil, screentext.DefaultStyles)
	g.Money = 250
	g.Screen.AddText(screentext.Big, screentext.MakeBig("W", "WASTED", screentext.AlignCenter, 5000))
	g.AddMessage("hello")

	lines := plain(r.Compose(g, 32, 80))

	// 24 HUD rows, status bar, pane header, one message, pane footer
	if len(lines) != 24+1+3 {
		t.Fatalf("len(lines) = %d, want 28", len(lines))
	}
	if want := strings.Repeat(" ", 37) + "WASTED"; lines[13] != want {
		t.Errorf("banner line = %q, want %q", lines[13], want)
	}
	if lines[24] != "$250" {
		t.Errorf("status line = %q, want $250", lines[24])
	}
	if !strings.Contains(lines[25], " Messages ") {
		t.Errorf("pane header = %q", lines[25])
	}
	if lines[26] != "  hello" {
		t.Errorf("message line = %q, want %q", lines[26], "  hello")
	}
}

func TestCompose_EmptyLog(t *testing.T) {
	r := newRenderer(t)
	g := state.NewGame(nil, screentext.DefaultStyles)

	lines := plain(r.Compose(g, 4, 20))
	if len(lines) != 1+1+3 {
		t.Fatalf("len(lines) = %d, want 5", len(lines))
	}
	if lines[3] != "  (no messages)" {
		t.Errorf("empty log line = %q", lines[3])
	}
}

func TestCompose_ExpiredEntriesVanish(t *testing.T) {
	r := newRenderer(t)
	g := state.NewGame(nil, screentext.DefaultStyles)
	g.Screen.AddText(screentext.HighPriority, screentext.MakeHighPriority("N", "notice", 1000))

	if !strings.Contains(strings.Join(plain(r.Compose(g, 32, 80)), "\n"), "notice") {
		t.Fatal("notice not drawn")
	}
	g.Tick(1.0)
	if strings.Contains(strings.Join(plain(r.Compose(g, 32, 80)), "\n"), "notice") {
		t.Error("expired notice still drawn")
	}
}
