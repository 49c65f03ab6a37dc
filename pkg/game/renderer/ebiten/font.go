package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"stationhud/pkg/engine/screentext"
)

// fontData maps each game font onto a bundled Go font.
var fontData = map[screentext.Font][]byte{
	screentext.FontPager:     gomono.TTF,
	screentext.FontPricedown: gobold.TTF,
	screentext.FontArial:     goregular.TTF,
}

// loadFonts parses every bundled font.
func loadFonts() (map[screentext.Font]*text.GoTextFaceSource, error) {
	sources := make(map[screentext.Font]*text.GoTextFaceSource, len(fontData))
	for f, data := range fontData {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to load font %d: %w", f, err)
		}
		sources[f] = source
	}
	return sources, nil
}

// getFace returns a cached face for font at size, falling back to the sans
// font for unknown fonts.
func (e *EbitenRenderer) getFace(font screentext.Font, size int) *text.GoTextFace {
	key := faceKey{font: font, size: size}
	if face, ok := e.faces[key]; ok {
		return face
	}

	source, ok := e.fontSources[font]
	if !ok {
		source = e.fontSources[screentext.FontArial]
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   float64(size),
	}
	e.faces[key] = face
	return face
}
