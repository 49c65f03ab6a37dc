package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationhud/pkg/engine/screentext"
)

func TestDefault_MatchesBuiltInStyles(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	styles, err := cfg.Styles()
	require.NoError(t, err)
	assert.Equal(t, screentext.DefaultStyles, styles)
	assert.Equal(t, 640, cfg.Screen.Width)
	assert.Equal(t, 480, cfg.Screen.Height)
	assert.Equal(t, 60, cfg.TPS)
}

func TestParse_OverridesAndAddsBigRows(t *testing.T) {
	doc := []byte(`
tps: 30
big:
  1:
    size: 64
    anchor: [320, 200]
    font: pricedown
    colour: "#ff0000"
    shadow: "#00000080"
  5:
    size: 24
    anchor: [100, 100]
    font: pager
    colour: "#ffffff"
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)

	styles, err := cfg.Styles()
	require.NoError(t, err)

	center := styles.MakeBig("T", "text", screentext.AlignCenter, 1000)
	assert.Equal(t, 64, center.Size)
	assert.Equal(t, screentext.Point{X: 320, Y: 200}, center.Position)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, center.Colour)
	assert.Equal(t, color.RGBA{0, 0, 0, 128}, center.ShadowColour)

	// Untouched rows keep their defaults
	assert.Equal(t, 30, styles.MakeBig("T", "text", screentext.AlignRight, 1000).Size)

	extra := styles.MakeBig("T", "text", screentext.Alignment(5), 1000)
	assert.Equal(t, 24, extra.Size)
	assert.Equal(t, screentext.FontPager, extra.Font)
}

func TestParse_FixedSizesCannotBeOverridden(t *testing.T) {
	cfg, err := Parse([]byte(`
help:
  size: 99
  anchor: [10, 10]
  font: arial
  colour: "#ffffff"
`))
	require.NoError(t, err)

	styles, err := cfg.Styles()
	require.NoError(t, err)
	help := styles.MakeHelp("H", "help")
	assert.Equal(t, screentext.HelpSize, help.Size)
	assert.Equal(t, screentext.Point{X: 10, Y: 10}, help.Position)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "big: [1, 2"},
		{"zero tps", "tps: 0"},
		{"zero size", "big:\n  1:\n    size: 0\n    font: arial\n    colour: '#ffffff'"},
		{"negative alignment", "big:\n  -1:\n    size: 10\n    font: arial\n    colour: '#ffffff'"},
		{"unknown font", "big:\n  1:\n    size: 10\n    font: comic\n    colour: '#ffffff'"},
		{"bad colour", "help:\n  font: arial\n  colour: 'blue'"},
		{"bad screen", "screen:\n  width: 0\n  height: 480"},
		{"colour with trailing junk", "help:\n  font: arial\n  colour: '#12345g'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tps: 45\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.TPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestColourRoundTrip(t *testing.T) {
	for _, s := range []string{"#3a7785", "#d6ab0980"} {
		c, err := ParseColour(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatColour(c))
	}
}

func TestParseColour_RejectsNonHex(t *testing.T) {
	for _, s := range []string{"#12345g", "#1234567z", "#ggggggff", "12 345", "#fff", ""} {
		_, err := ParseColour(s)
		assert.Error(t, err, s)
	}

	c, err := ParseColour("FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)
}
