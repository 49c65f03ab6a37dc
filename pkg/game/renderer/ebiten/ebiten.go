// Package ebiten provides an Ebiten-based 2D graphical renderer that also
// drives the game loop.
package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/game/state"
)

const windowTitle = "Station HUD"

// New creates a new Ebiten renderer for a virtual screen of the given size
func New(screenWidth, screenHeight, tps int) *EbitenRenderer {
	return &EbitenRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		zoom:         defaultZoom,
		tps:          tps,
		faces:        make(map[faceKey]*text.GoTextFace),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	sources, err := loadFonts()
	if err != nil {
		return err
	}
	e.fontSources = sources

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.tps)
	e.applyWindowSize()
	return nil
}

// Clear is a no-op; Draw repaints every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame sets the game drawn by the next Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// ShowMessage logs msg; there is no console window
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Print(msg)
}

// GetViewportSize returns the virtual screen size in pixels (rows = height)
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.screenHeight, e.screenWidth
}

// Close is a no-op; the window closes when Run returns
func (e *EbitenRenderer) Close() {}

// Run drives g with step once per tick until step asks to stop or the window
// is closed.
func (e *EbitenRenderer) Run(g *state.Game, step StepFunc) error {
	e.game = g
	e.step = step
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten game loop: %w", err)
	}
	return nil
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	intents, zoomed := e.applyZoom(e.collectIntents())
	if zoomed {
		e.applyWindowSize()
	}
	if e.game == nil || e.step == nil {
		return nil
	}
	if e.step(e.game, intents, 1.0/float64(ebiten.TPS())) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the screen text queues (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil {
		return
	}

	for _, cat := range e.game.Screen.Categories() {
		for _, entry := range e.game.Screen.Text(cat) {
			alpha := entryAlpha(entry)
			if cat == screentext.Help {
				e.drawHelpBox(screen, entry, alpha)
				continue
			}
			e.drawEntry(screen, entry, alpha)
		}
	}

	e.drawStatus(screen)
}

// drawStatus draws the wallet and the message log along the bottom edge
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image) {
	const size = 12
	const lineHeight = size + 4

	e.drawPlainText(screen, fmt.Sprintf("$%d", e.game.Money), float64(e.screenWidth)-80, 8, size+2, colorMoney)

	msgs := e.game.Messages
	y := float64(e.screenHeight) - float64(len(msgs)*lineHeight) - 4
	for i, msg := range msgs {
		col := colorSubtle
		if i == len(msgs)-1 {
			col = colorText
		}
		e.drawPlainText(screen, msg, 8, y, size, col)
		y += lineHeight
	}
}

// Layout returns the virtual screen size; Ebiten scales it to the window
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenWidth, e.screenHeight
}

// applyWindowSize resizes the window to the virtual screen times the zoom
func (e *EbitenRenderer) applyWindowSize() {
	ebiten.SetWindowSize(e.screenWidth*e.zoom, e.screenHeight*e.zoom)
}
