// Package config loads the HUD layout file.
package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stationhud/pkg/engine/screentext"
)

// Virtual screen the style anchors are expressed in.
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultTPS          = 60
)

// HUDConfig is the on-disk HUD layout.
type HUDConfig struct {
	Screen       ScreenConfig        `yaml:"screen"`       // Virtual screen size
	TPS          int                 `yaml:"tps"`          // Game loop ticks per second
	Big          map[int]StyleConfig `yaml:"big"`          // Alignment -> big text style
	Help         StyleConfig         `yaml:"help"`         // Size is fixed, other fields apply
	HighPriority StyleConfig         `yaml:"highPriority"` // Size is fixed, other fields apply
}

// ScreenConfig is the virtual screen size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StyleConfig is one row of a style table.
type StyleConfig struct {
	Size   int        `yaml:"size"`
	Anchor [2]float64 `yaml:"anchor"` // x, y
	Font   string     `yaml:"font"`   // pager, pricedown or arial
	Colour string     `yaml:"colour"` // #rrggbb or #rrggbbaa
	Shadow string     `yaml:"shadow"` // empty = no shadow
	WrapX  float64    `yaml:"wrapX"`
}

var fontNames = map[string]screentext.Font{
	"pager":     screentext.FontPager,
	"pricedown": screentext.FontPricedown,
	"arial":     screentext.FontArial,
}

// Default returns the compiled-in layout.
func Default() *HUDConfig {
	def := screentext.DefaultStyles
	cfg := &HUDConfig{
		Screen:       ScreenConfig{Width: DefaultScreenWidth, Height: DefaultScreenHeight},
		TPS:          DefaultTPS,
		Big:          make(map[int]StyleConfig, len(def.Big)),
		Help:         fromStyle(def.Help),
		HighPriority: fromStyle(def.HighPriority),
	}
	for a, s := range def.Big {
		cfg.Big[int(a)] = fromStyle(s)
	}
	return cfg
}

// Load reads a HUD layout from filePath on top of the defaults. Big rows
// present in the file replace the default row for that alignment entirely.
func Load(filePath string) (*HUDConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read HUD config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a HUD layout document on top of the defaults.
func Parse(data []byte) (*HUDConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse HUD config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid HUD config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field that a factory or renderer would otherwise
// trip over.
func (c *HUDConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be > 0, got %d", c.TPS)
	}
	if len(c.Big) == 0 {
		return fmt.Errorf("big cannot be empty")
	}
	for a, s := range c.Big {
		if a < 0 {
			return fmt.Errorf("big alignment must be >= 0, got %d", a)
		}
		if s.Size <= 0 {
			return fmt.Errorf("big[%d].size must be > 0, got %d", a, s.Size)
		}
		if _, err := s.style(); err != nil {
			return fmt.Errorf("big[%d]: %w", a, err)
		}
	}
	if _, err := c.Help.style(); err != nil {
		return fmt.Errorf("help: %w", err)
	}
	if _, err := c.HighPriority.style(); err != nil {
		return fmt.Errorf("highPriority: %w", err)
	}
	return nil
}

// Styles converts the layout into factory style tables.
func (c *HUDConfig) Styles() (screentext.Styles, error) {
	out := screentext.Styles{Big: make(screentext.BigStyles, len(c.Big))}
	for a, sc := range c.Big {
		s, err := sc.style()
		if err != nil {
			return screentext.Styles{}, fmt.Errorf("big[%d]: %w", a, err)
		}
		out.Big[screentext.Alignment(a)] = s
	}

	var err error
	if out.Help, err = c.Help.style(); err != nil {
		return screentext.Styles{}, fmt.Errorf("help: %w", err)
	}
	if out.HighPriority, err = c.HighPriority.style(); err != nil {
		return screentext.Styles{}, fmt.Errorf("highPriority: %w", err)
	}
	out.Help.Size = screentext.HelpSize
	out.HighPriority.Size = screentext.HighPrioritySize
	return out, nil
}

func (sc StyleConfig) style() (screentext.Style, error) {
	font, ok := fontNames[strings.ToLower(sc.Font)]
	if !ok {
		return screentext.Style{}, fmt.Errorf("unknown font %q", sc.Font)
	}
	fg, err := ParseColour(sc.Colour)
	if err != nil {
		return screentext.Style{}, fmt.Errorf("colour: %w", err)
	}
	var shadow color.RGBA
	if sc.Shadow != "" {
		if shadow, err = ParseColour(sc.Shadow); err != nil {
			return screentext.Style{}, fmt.Errorf("shadow: %w", err)
		}
	}
	return screentext.Style{
		Size:         sc.Size,
		Position:     screentext.Point{X: sc.Anchor[0], Y: sc.Anchor[1]},
		Font:         font,
		Colour:       fg,
		ShadowColour: shadow,
		WrapX:        sc.WrapX,
	}, nil
}

func fromStyle(s screentext.Style) StyleConfig {
	sc := StyleConfig{
		Size:   s.Size,
		Anchor: [2]float64{s.Position.X, s.Position.Y},
		Font:   fontName(s.Font),
		Colour: FormatColour(s.Colour),
		WrapX:  s.WrapX,
	}
	if s.ShadowColour != (color.RGBA{}) {
		sc.Shadow = FormatColour(s.ShadowColour)
	}
	return sc
}

func fontName(f screentext.Font) string {
	for name, v := range fontNames {
		if v == f {
			return name
		}
	}
	return "arial"
}

// ParseColour parses #rrggbb or #rrggbbaa.
func ParseColour(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q: want #rrggbb or #rrggbbaa", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// FormatColour is the inverse of ParseColour; opaque colours use the short form.
func FormatColour(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
