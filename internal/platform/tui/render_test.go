package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/gridwalk/internal/assets"
	"github.com/vovakirdan/gridwalk/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Color: core.ColorRed})
	s.SetCell(1, 0, core.Cell{Rune: 'y', Color: core.ColorRed, Background: core.ColorGray})
	s.SetBackground(2, 0, core.ColorGray)

	got := RenderScreen(s)
	for _, want := range []string{"x", "y"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen() = %q, missing %q", got, want)
		}
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", got)
	}
}

func TestPlayfieldSkipsUnknownAsset(t *testing.T) {
	p := NewPlayfield(testAtlas(), core.ColorGray)
	p.Begin(6, 3, "")
	p.Draw("dragon", 0, 0)

	if got := p.Screen().GetCell(1, 1); got.Rune != ' ' {
		t.Errorf("unknown asset drew %+v", got)
	}

	p.Draw("player", 4, 2)
	if got := p.Screen().GetCell(5, 3); got.Rune != '<' {
		t.Errorf("player not drawn at offset: %+v", got)
	}
}

func TestPlayfieldCaption(t *testing.T) {
	p := NewPlayfield(testAtlas(), core.ColorGray)
	p.Begin(6, 3, " 3x3 ")

	if got := p.Screen().Row(0); got != "┌ 3x3 ─┐" {
		t.Errorf("top edge = %q", got)
	}

	// Too long for the edge: border only.
	p.Begin(2, 1, " 3x3 ")
	if got := p.Screen().Row(0); got != "┌──┐" {
		t.Errorf("top edge = %q", got)
	}
}

func TestCellSize(t *testing.T) {
	cell, ok := CellSize(testAtlas())
	if !ok || cell.W != 2 || cell.H != 1 {
		t.Errorf("CellSize() = %+v, %v", cell, ok)
	}
}

func TestCheckAtlas(t *testing.T) {
	player := assets.Texture{Name: "player", Width: 2, Height: 1, Cells: [][]rune{[]rune("<>")}}

	tests := []struct {
		name  string
		point assets.Texture
		err   error
	}{
		{"same size", assets.Texture{Name: "point", Width: 2, Height: 1, Cells: [][]rune{[]rune("..")}}, nil},
		{"smaller", assets.Texture{Name: "point", Width: 1, Height: 1, Cells: [][]rune{[]rune(".")}}, nil},
		{"too wide", assets.Texture{Name: "point", Width: 3, Height: 1, Cells: [][]rune{[]rune("...")}}, ErrSpriteTooLarge},
		{"too tall", assets.Texture{Name: "point", Width: 2, Height: 2, Cells: [][]rune{[]rune(".."), []rune("..")}}, ErrSpriteTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, err := CheckAtlas(assets.Atlas{"player": player, "point": tc.point})
			if !errors.Is(err, tc.err) {
				t.Fatalf("CheckAtlas() = %v, expected %v", err, tc.err)
			}
			if tc.err == nil && (cell.W != 2 || cell.H != 1) {
				t.Errorf("cell = %+v, expected 2x1", cell)
			}
		})
	}

	if _, err := CheckAtlas(assets.Atlas{}); !errors.Is(err, ErrNoPlayerTexture) {
		t.Errorf("CheckAtlas(empty) = %v, expected ErrNoPlayerTexture", err)
	}
}
