// Package assets loads the sprites the game is drawn with.
//
// A texture is a small rectangle of terminal cells described in YAML. The
// player's texture size defines the grid cell size, the same way an image's
// pixel size would on a raster canvas.
package assets

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridwalk/internal/core"
)

var (
	// ErrEmptySprite is returned for a sprite with no rows or empty rows.
	ErrEmptySprite = errors.New("assets: empty sprite")
	// ErrRagged is returned when sprite rows differ in width.
	ErrRagged = errors.New("assets: rows differ in width")
	// ErrWideRune is returned for runes that occupy more than one terminal cell.
	ErrWideRune = errors.New("assets: rune wider than one cell")
	// ErrNotFound is returned when no file or embedded default exists.
	ErrNotFound = errors.New("assets: not found")
)

// narrow measures runes without East Asian ambiguous widening, matching
// how the renderer lays out one rune per cell.
var narrow = &runewidth.Condition{EastAsianWidth: false}

// spriteFile is the on-disk sprite format.
type spriteFile struct {
	Name       string   `yaml:"name"`
	Color      string   `yaml:"color"`
	Background string   `yaml:"background"`
	Rows       []string `yaml:"rows"`
}

// Texture is a decoded sprite ready to draw.
type Texture struct {
	Name       string
	Width      int
	Height     int
	Color      core.Color
	Background core.Color
	Cells      [][]rune // Height rows of Width runes; ' ' is transparent
	Source     string   // where the texture was loaded from
}

// Decode parses sprite YAML. name is used when the file does not set one.
func Decode(name string, data []byte) (Texture, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Texture{}, fmt.Errorf("assets: parse %s: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}
	if len(f.Rows) == 0 {
		return Texture{}, fmt.Errorf("%w: %s", ErrEmptySprite, f.Name)
	}

	fg, err := core.ParseColor(f.Color)
	if err != nil {
		return Texture{}, fmt.Errorf("assets: %s: %w", f.Name, err)
	}
	bg, err := core.ParseColor(f.Background)
	if err != nil {
		return Texture{}, fmt.Errorf("assets: %s: %w", f.Name, err)
	}

	tex := Texture{
		Name:       f.Name,
		Height:     len(f.Rows),
		Color:      fg,
		Background: bg,
		Cells:      make([][]rune, len(f.Rows)),
	}
	for i, row := range f.Rows {
		runes := []rune(row)
		for _, r := range runes {
			if narrow.RuneWidth(r) != 1 {
				return Texture{}, fmt.Errorf("%w: %q in %s row %d", ErrWideRune, r, f.Name, i)
			}
		}
		if len(runes) == 0 {
			return Texture{}, fmt.Errorf("%w: %s row %d", ErrEmptySprite, f.Name, i)
		}
		if i == 0 {
			tex.Width = len(runes)
		} else if len(runes) != tex.Width {
			return Texture{}, fmt.Errorf("%w: %s row %d is %d wide, expected %d",
				ErrRagged, f.Name, i, len(runes), tex.Width)
		}
		tex.Cells[i] = runes
	}
	return tex, nil
}

// Draw paints the texture onto dst with its top-left corner at (x, y).
// Spaces keep the cell underneath and only apply the background, if any.
func (t Texture) Draw(dst *core.Screen, x, y int) {
	for dy, row := range t.Cells {
		for dx, r := range row {
			px, py := x+dx, y+dy
			if r == ' ' {
				if t.Background != core.ColorDefault {
					dst.SetBackground(px, py, t.Background)
				}
				continue
			}
			bg := t.Background
			if bg == core.ColorDefault {
				bg = dst.GetCell(px, py).Background
			}
			dst.SetCell(px, py, core.Cell{Rune: r, Color: t.Color, Background: bg})
		}
	}
}
