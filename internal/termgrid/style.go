package termgrid

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal colour: either the terminal's own default, a
// 256-colour palette index, or a true RGB colour.
type Color struct {
	R, G, B uint8
	Indexed bool
	Default bool
}

var (
	ColorDefault = Color{Default: true}
	ColorRed     = Color{R: 0xd7, G: 0x37, B: 0x3a}
	ColorGreen   = Color{R: 0x3a, G: 0xa6, B: 0x5a}
	ColorYellow  = Color{R: 0xd7, G: 0xb3, B: 0x2a}
	ColorBlue    = Color{R: 0x3a, G: 0x7a, B: 0xd7}
	ColorMagenta = Color{R: 0xa6, G: 0x3a, B: 0xd7}
	ColorCyan    = Color{R: 0x3a, G: 0xa6, B: 0xd7}
	ColorGray    = Color{R: 0x80, G: 0x80, B: 0x80}
)

// ColorFromIndex builds a 256-colour palette colour.
func ColorFromIndex(idx uint8) Color { return Color{R: idx, Indexed: true} }

// Blend linearly interpolates two true colours in a perceptually
// uniform space, used by the blame view to shade lines by commit age
// (oldest commits fade toward the background colour).
func (c Color) Blend(o Color, t float64) Color {
	if c.Indexed || o.Indexed || c.Default || o.Default {
		if t < 0.5 {
			return c
		}
		return o
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	m := a.BlendLuv(b, clamp01(t))
	r, g, bl := m.Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << iota
	AttrUnderline Attr = 1 << iota
	AttrReverse   Attr = 1 << iota
	AttrDim       Attr = 1 << iota
)

func (a Attr) Has(o Attr) bool { return a&o != 0 }

// Style is a foreground/background colour pair plus attributes,
// applied to a single cell.
type Style struct {
	Fg, Bg Color
	Attr   Attr
}

var StyleDefault = Style{Fg: ColorDefault, Bg: ColorDefault}

func (s Style) WithFg(c Color) Style { s.Fg = c; return s }
func (s Style) WithBg(c Color) Style { s.Bg = c; return s }
func (s Style) WithAttr(a Attr) Style {
	s.Attr |= a
	return s
}
