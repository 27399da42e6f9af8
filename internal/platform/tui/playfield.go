package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/gridwalk/internal/assets"
	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/game"
)

// Playfield draws game entities into a screen buffer inside a one-cell
// border. It implements game.Renderer.
type Playfield struct {
	screen *core.Screen
	atlas  assets.Atlas
	border core.Color
}

// NewPlayfield creates a playfield drawing textures from atlas.
func NewPlayfield(atlas assets.Atlas, border core.Color) *Playfield {
	return &Playfield{
		screen: core.NewScreen(2, 2),
		atlas:  atlas,
		border: border,
	}
}

// Begin sizes the buffer for a viewport, clears it and draws the border
// with caption centered on the top edge when it fits.
func (p *Playfield) Begin(viewportW, viewportH int, caption string) {
	w, h := viewportW+2, viewportH+2
	if p.screen.Width() != w || p.screen.Height() != h {
		p.screen.Resize(w, h)
	}
	p.screen.Clear()

	frame := core.NewRect(0, 0, w, h)
	p.screen.DrawBox(frame, p.border)

	if n := utf8.RuneCountInString(caption); n > 0 && n <= w-2 {
		at := frame.Centered(n, 1)
		p.screen.DrawText(at.X, 0, caption)
	}
}

// Draw paints the texture for asset with its top-left corner at (x, y) in
// viewport coordinates. Unknown assets are skipped.
func (p *Playfield) Draw(asset game.AssetRef, x, y int) {
	tex, ok := p.atlas.Get(string(asset))
	if !ok {
		return
	}
	tex.Draw(p.screen, x+1, y+1)
}

// Screen returns the buffer drawn so far.
func (p *Playfield) Screen() *core.Screen {
	return p.screen
}

// CellSize derives the grid cell size from the player texture.
func CellSize(atlas assets.Atlas) (game.CellSize, bool) {
	tex, ok := atlas.Get(string(game.AssetPlayer))
	if !ok {
		return game.CellSize{}, false
	}
	return game.CellSize{W: tex.Width, H: tex.Height}, true
}

// CheckAtlas returns the cell size for atlas. Every other sprite the game
// draws must fit inside one cell.
func CheckAtlas(atlas assets.Atlas) (game.CellSize, error) {
	cell, ok := CellSize(atlas)
	if !ok {
		return game.CellSize{}, ErrNoPlayerTexture
	}
	if tex, ok := atlas.Get(string(game.AssetPoint)); ok && (tex.Width > cell.W || tex.Height > cell.H) {
		return game.CellSize{}, fmt.Errorf("%w: %s is %dx%d, cell is %dx%d",
			ErrSpriteTooLarge, tex.Name, tex.Width, tex.Height, cell.W, cell.H)
	}
	return cell, nil
}
