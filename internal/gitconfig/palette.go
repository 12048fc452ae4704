// Package gitconfig loads the optional ~/.gitrsrc.toml companion
// file: a strictly additive palette of colour and UI overrides, kept
// separate from the line-oriented ~/.gitrsrc keymap grammar
// (internal/config) per spec.md §4.3/§6.
package gitconfig

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gitrsrc/gitrsrc/internal/termgrid"
)

// ColorSet names the subset of the character grid's palette a
// ~/.gitrsrc.toml file may override.
type ColorSet struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Cursor     string `toml:"cursor"`
	Added      string `toml:"added"`
	Removed    string `toml:"removed"`
	Fresh      string `toml:"fresh"`
	Stale      string `toml:"stale"`
}

// UISet names the non-colour display preferences a palette file may
// override.
type UISet struct {
	MenuBar bool `toml:"menu_bar"`
}

// Palette is the parsed content of ~/.gitrsrc.toml.
type Palette struct {
	Colors ColorSet `toml:"colors"`
	UI     UISet    `toml:"ui"`
}

// Load reads and parses path. A missing file is not an error: it
// returns a zero Palette, matching ~/.gitrsrc.toml being strictly
// optional.
func Load(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Palette{}, nil
		}
		return Palette{}, fmt.Errorf("gitconfig: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom parses a palette from r.
func LoadFrom(r io.Reader) (Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Palette{}, fmt.Errorf("gitconfig: read: %w", err)
	}
	var p Palette
	if len(data) == 0 {
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("gitconfig: parse: %w", err)
	}
	return p, nil
}

// Color resolves one named override to a termgrid.Color, returning
// (zero, false) when the field was left blank (not overridden) or
// names an unrecognised colour.
func Color(name string) (termgrid.Color, bool) {
	switch name {
	case "":
		return termgrid.Color{}, false
	case "default":
		return termgrid.ColorDefault, true
	case "red":
		return termgrid.ColorRed, true
	case "green":
		return termgrid.ColorGreen, true
	case "yellow":
		return termgrid.ColorYellow, true
	case "blue":
		return termgrid.ColorBlue, true
	case "magenta":
		return termgrid.ColorMagenta, true
	case "cyan":
		return termgrid.ColorCyan, true
	case "gray", "grey":
		return termgrid.ColorGray, true
	default:
		if c, ok := parseHexColor(name); ok {
			return c, true
		}
		return termgrid.Color{}, false
	}
}

func parseHexColor(s string) (termgrid.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return termgrid.Color{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return termgrid.Color{}, false
	}
	return termgrid.Color{R: r, G: g, B: b}, true
}

// Apply overlays the non-empty foreground/background fields of p onto
// base and returns that style together with the fresh/stale colours
// used by blame heatmaps (green/red unless p sets them). The cursor,
// added and removed fields are not applied here.
func Apply(p Palette, base termgrid.Style) (effective termgrid.Style, fresh, stale termgrid.Color) {
	fresh, stale = termgrid.ColorGreen, termgrid.ColorRed
	effective = base
	if c, ok := Color(p.Colors.Foreground); ok {
		effective = effective.WithFg(c)
	}
	if c, ok := Color(p.Colors.Background); ok {
		effective = effective.WithBg(c)
	}
	if c, ok := Color(p.Colors.Fresh); ok {
		fresh = c
	}
	if c, ok := Color(p.Colors.Stale); ok {
		stale = c
	}
	return effective, fresh, stale
}
