// Package screentext manages the transient text shown over gameplay: big
// titles, high priority notices and help prompts. Entries age by the frame delta
// passed to Manager.Tick and are evicted once their display budget is spent.
package screentext

import (
	"fmt"
	"image/color"
)

// Category selects the queue an entry lives in.
type Category int

const (
	Big          Category = iota // Large banner titles ("BUSTED", "MISSION PASSED")
	HighPriority                 // Urgent notices shown under the banner
	Help                         // Contextual hint box
)

func (c Category) String() string {
	switch c {
	case Big:
		return "Big"
	case HighPriority:
		return "HighPriority"
	case Help:
		return "Help"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Alignment is the horizontal anchoring of an entry relative to its Position.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Font identifies one of the game fonts. Renderers map these onto faces.
type Font int

const (
	FontPager Font = iota
	FontPricedown
	FontArial
)

// Point is an anchor in the 640x480 virtual screen.
type Point struct {
	X, Y float64
}

// Entry is one queued message.
type Entry struct {
	ID   string // Not unique; Manager.Remove drops every entry sharing it
	Text string // Fully resolved display string

	DurationMS  int // Display budget, fixed at creation
	DisplayedMS int // Time on screen so far, advanced by Manager.Tick

	Alignment    Alignment
	Size         int
	Position     Point
	Font         Font
	Colour       color.RGBA
	ShadowColour color.RGBA
	WrapX        float64 // Right edge for wrapping, 0 = none
}

// Expired reports whether the entry has used up its display time.
func (e Entry) Expired() bool {
	return e.DisplayedMS >= e.DurationMS
}

// RemainingMS returns how long the entry stays on screen, never below zero.
func (e Entry) RemainingMS() int {
	if e.Expired() {
		return 0
	}
	return e.DurationMS - e.DisplayedMS
}

// Progress returns the fraction of the display budget already used (0.0-1.0).
func (e Entry) Progress() float64 {
	if e.DurationMS <= 0 || e.Expired() {
		return 1.0
	}
	return float64(e.DisplayedMS) / float64(e.DurationMS)
}

// Style holds the presentation attributes a factory stamps onto an entry.
type Style struct {
	Size         int
	Position     Point
	Font         Font
	Colour       color.RGBA
	ShadowColour color.RGBA
	WrapX        float64
}

func (s Style) apply(e *Entry) {
	e.Size = s.Size
	e.Position = s.Position
	e.Font = s.Font
	e.Colour = s.Colour
	e.ShadowColour = s.ShadowColour
	e.WrapX = s.WrapX
}

// Fixed presentation rules for the help and high priority categories.
const (
	HelpDurationMS        = 5000
	HelpSize              = 18
	HelpAlignment         = AlignLeft
	HighPrioritySize      = 18
	HighPriorityAlignment = AlignCenter
)

// BigStyles maps a big text alignment onto its fixed style. Only alignments
// present in the table are valid for MakeBig.
type BigStyles map[Alignment]Style

// Clone returns a copy that can be modified without touching the original.
func (t BigStyles) Clone() BigStyles {
	out := make(BigStyles, len(t))
	for a, s := range t {
		out[a] = s
	}
	return out
}

// Has reports whether alignment a has a row in the table.
func (t BigStyles) Has(a Alignment) bool {
	_, ok := t[a]
	return ok
}

// Styles is the full set of per-category presentation tables.
type Styles struct {
	Big          BigStyles
	Help         Style
	HighPriority Style
}

// DefaultStyles is the stock table used by the package level factories.
var DefaultStyles = Styles{
	Big: BigStyles{
		AlignLeft: {
			Size:         40,
			Position:     Point{20, 380},
			Font:         FontPricedown,
			Colour:       color.RGBA{169, 123, 88, 255},
			ShadowColour: color.RGBA{0, 0, 0, 255},
		},
		AlignCenter: {
			Size:         50,
			Position:     Point{320, 252},
			Font:         FontPricedown,
			Colour:       color.RGBA{58, 119, 133, 255},
			ShadowColour: color.RGBA{0, 0, 0, 255},
		},
		AlignRight: {
			Size:         30,
			Position:     Point{620, 380},
			Font:         FontPricedown,
			Colour:       color.RGBA{214, 171, 9, 255},
			ShadowColour: color.RGBA{0, 0, 0, 255},
		},
	},
	Help: Style{
		Size:     HelpSize,
		Position: Point{20, 20},
		Font:     FontArial,
		Colour:   color.RGBA{255, 255, 255, 255},
		WrapX:    200,
	},
	HighPriority: Style{
		Size:         HighPrioritySize,
		Position:     Point{320, 420},
		Font:         FontArial,
		Colour:       color.RGBA{255, 255, 255, 255},
		ShadowColour: color.RGBA{0, 0, 0, 255},
		WrapX:        500,
	},
}

// Clone returns a deep copy of s.
func (s Styles) Clone() Styles {
	s.Big = s.Big.Clone()
	return s
}

// MakeBig builds a big text entry. The size comes from the Big table row for
// alignment; an alignment without a row is a caller error.
func (s Styles) MakeBig(id, text string, alignment Alignment, durationMS int) Entry {
	style, ok := s.Big[alignment]
	if !ok {
		panic(fmt.Sprintf("screentext: no big text style for alignment %d", alignment))
	}
	e := newEntry(id, text, durationMS)
	e.Alignment = alignment
	style.apply(&e)
	return e
}

// MakeHelp builds a help prompt. Duration, size and alignment are fixed.
func (s Styles) MakeHelp(id, text string) Entry {
	e := newEntry(id, text, HelpDurationMS)
	s.Help.apply(&e)
	e.Alignment = HelpAlignment
	e.Size = HelpSize
	return e
}

// MakeHighPriority builds an urgent notice.
func (s Styles) MakeHighPriority(id, text string, durationMS int) Entry {
	e := newEntry(id, text, durationMS)
	s.HighPriority.apply(&e)
	e.Alignment = HighPriorityAlignment
	e.Size = HighPrioritySize
	return e
}

// MakeBig builds a big text entry from DefaultStyles.
func MakeBig(id, text string, alignment Alignment, durationMS int) Entry {
	return DefaultStyles.MakeBig(id, text, alignment, durationMS)
}

// MakeHelp builds a help prompt from DefaultStyles.
func MakeHelp(id, text string) Entry {
	return DefaultStyles.MakeHelp(id, text)
}

// MakeHighPriority builds an urgent notice from DefaultStyles.
func MakeHighPriority(id, text string, durationMS int) Entry {
	return DefaultStyles.MakeHighPriority(id, text, durationMS)
}

// newEntry checks the factory preconditions shared by every category.
func newEntry(id, text string, durationMS int) Entry {
	if id == "" {
		panic("screentext: entry id must not be empty")
	}
	if text == "" {
		panic(fmt.Sprintf("screentext: entry %q has empty text", id))
	}
	if durationMS <= 0 {
		panic(fmt.Sprintf("screentext: entry %q has non-positive duration %d", id, durationMS))
	}
	return Entry{ID: id, Text: text, DurationMS: durationMS}
}
