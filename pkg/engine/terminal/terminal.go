package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// VisibleLen returns the number of terminal cells s occupies. Callers pass
// text without escape codes.
func VisibleLen(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most width cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// PadLeft returns the spaces that move a line start to column col.
func PadLeft(col int) string {
	if col <= 0 {
		return ""
	}
	return strings.Repeat(" ", col)
}

// CenterColumn returns the start column for n runes centered on col.
func CenterColumn(col, n int) int {
	start := col - n/2
	if start < 0 {
		return 0
	}
	return start
}

// RightColumn returns the start column for n runes ending at col.
func RightColumn(col, n int) int {
	start := col - n
	if start < 0 {
		return 0
	}
	return start
}
