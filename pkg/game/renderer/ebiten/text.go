package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stationhud/pkg/engine/screentext"
)

// entryAlpha returns the opacity of e: a short fade in after it appears and a
// fade out before it expires.
func entryAlpha(e screentext.Entry) float64 {
	alpha := 1.0
	if e.DisplayedMS < fadeInMS {
		alpha = float64(e.DisplayedMS) / fadeInMS
	}
	if remaining := e.RemainingMS(); remaining < fadeOutMS {
		if out := float64(remaining) / fadeOutMS; out < alpha {
			alpha = out
		}
	}
	return alpha
}

// primaryAlign maps an entry alignment onto text/v2 horizontal alignment.
// Unknown alignments anchor on the left edge.
func primaryAlign(a screentext.Alignment) text.Align {
	switch a {
	case screentext.AlignCenter:
		return text.AlignCenter
	case screentext.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// drawEntry draws e at its anchor with its shadow, faded by alpha.
func (e *EbitenRenderer) drawEntry(screen *ebiten.Image, entry screentext.Entry, alpha float64) {
	// Skip drawing if alpha is too low (avoid rendering artifacts)
	if alpha < 0.01 {
		return
	}
	face := e.getFace(entry.Font, entry.Size)

	if entry.ShadowColour.A > 0 {
		e.drawAligned(screen, entry, face, shadowOffset, shadowOffset, applyAlpha(entry.ShadowColour, alpha))
	}
	e.drawAligned(screen, entry, face, 0, 0, applyAlpha(entry.Colour, alpha))
}

func (e *EbitenRenderer) drawAligned(screen *ebiten.Image, entry screentext.Entry, face *text.GoTextFace, dx, dy float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(entry.Position.X+dx, entry.Position.Y+dy)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = primaryAlign(entry.Alignment)
	text.Draw(screen, entry.Text, face, op)
}

// drawHelpBox draws a help entry on a dark box.
func (e *EbitenRenderer) drawHelpBox(screen *ebiten.Image, entry screentext.Entry, alpha float64) {
	if alpha < 0.01 {
		return
	}
	face := e.getFace(entry.Font, entry.Size)
	w, h := text.Measure(entry.Text, face, 0)

	x := float32(entry.Position.X - helpPadding)
	y := float32(entry.Position.Y - helpPadding)
	bw := float32(w + helpPadding*2)
	bh := float32(h + helpPadding*2)
	vector.DrawFilledRect(screen, x, y, bw, bh, applyAlpha(colorHelpBox, alpha), false)
	vector.StrokeRect(screen, x, y, bw, bh, 1, applyAlpha(colorHelpBoxBorder, alpha), false)

	e.drawEntry(screen, entry, alpha)
}

// drawPlainText draws str with its top-left corner at (x, y)
func (e *EbitenRenderer) drawPlainText(screen *ebiten.Image, str string, x, y float64, size int, col color.Color) {
	face := e.getFace(screentext.FontArial, size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	// Scale RGB with alpha so colors fade to transparent black
	return color.RGBA{
		uint8(float64(r8) * alpha),
		uint8(float64(g8) * alpha),
		uint8(float64(b8) * alpha),
		uint8(float64(a8) * alpha),
	}
}
