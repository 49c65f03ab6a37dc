package renderer

import (
	"stationhud/pkg/game/state"
)

// Renderer defines the interface for game rendering backends
// Implementations include the plain terminal (tui), tcell (cell) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame draws the screen text queues and the message log
	RenderFrame(g *state.Game)

	// ShowMessage displays a message to the user outside the frame
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)

	// Close releases the display
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 24, 80 // sensible defaults
}

// Close releases the current renderer
func Close() {
	if Current != nil {
		Current.Close()
	}
}
