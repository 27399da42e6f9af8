package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gridwalk/internal/core"
)

func writeSprite(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	tex, err := Decode("hero", []byte(`
color: yellow
rows:
  - "/\\"
  - "\\/"
`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if tex.Name != "hero" {
		t.Errorf("Name = %q, expected hero", tex.Name)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Errorf("size = %dx%d, expected 2x2", tex.Width, tex.Height)
	}
	if tex.Color != core.ColorYellow {
		t.Errorf("Color = %d, expected yellow", tex.Color)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no rows", "name: x\n", ErrEmptySprite},
		{"empty row", "rows: [\"ab\", \"\"]\n", ErrEmptySprite},
		{"ragged", "rows: [\"abc\", \"ab\"]\n", ErrRagged},
		{"wide rune", "rows: [\"界\"]\n", ErrWideRune},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.name, []byte(tc.body))
			if !errors.Is(err, tc.want) {
				t.Errorf("Decode() = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := Decode("bad", []byte("rows: [\"a\"]\ncolor: chartreuse\n")); err == nil {
		t.Error("expected error for unknown color")
	}
	if _, err := Decode("bad", []byte("rows: {")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	l := NewLoader("", nil)

	player, err := l.Load(context.Background(), "player")
	if err != nil {
		t.Fatalf("Load(player) failed: %v", err)
	}
	if player.Width != 4 || player.Height != 2 {
		t.Errorf("player size = %dx%d, expected 4x2", player.Width, player.Height)
	}

	point, err := l.Load(context.Background(), "point")
	if err != nil {
		t.Fatalf("Load(point) failed: %v", err)
	}
	if point.Width != player.Width || point.Height != player.Height {
		t.Errorf("point size %dx%d should match player %dx%d",
			point.Width, point.Height, player.Width, player.Height)
	}
}

func TestLoadPrefersDir(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, dir, "player", "rows: [\"@\"]\n")

	tex, err := NewLoader(dir, nil).Load(context.Background(), "player")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tex.Width != 1 || tex.Height != 1 {
		t.Errorf("size = %dx%d, expected 1x1 from dir", tex.Width, tex.Height)
	}
	if tex.Source != filepath.Join(dir, "player.yaml") {
		t.Errorf("Source = %q", tex.Source)
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	l := NewLoader("", nil)
	l.Paths["player"] = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := l.Load(context.Background(), "player"); err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestLoadUnknownName(t *testing.T) {
	_, err := NewLoader(t.TempDir(), nil).Load(context.Background(), "dragon")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() = %v, expected ErrNotFound", err)
	}
}

func TestLoadAll(t *testing.T) {
	atlas, err := NewLoader("", nil).LoadAll(context.Background(), "player", "point")
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(atlas) != 2 {
		t.Fatalf("atlas has %d textures, expected 2", len(atlas))
	}
	if _, ok := atlas.Get("player"); !ok {
		t.Error("atlas missing player")
	}
	if _, ok := atlas.Get("point"); !ok {
		t.Error("atlas missing point")
	}
}

func TestLoadAllFailsOnAnyError(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, dir, "point", "rows: [\"ab\", \"a\"]\n")

	_, err := NewLoader(dir, nil).LoadAll(context.Background(), "player", "point")
	if !errors.Is(err, ErrRagged) {
		t.Errorf("LoadAll() = %v, expected ErrRagged", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader("", nil).Load(ctx, "player"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() = %v, expected context.Canceled", err)
	}
}

func TestTextureDrawTransparency(t *testing.T) {
	player := Texture{Width: 2, Height: 1, Color: core.ColorBrightCyan, Cells: [][]rune{[]rune("<>")}}
	point := Texture{Width: 2, Height: 1, Background: core.ColorGray, Cells: [][]rune{[]rune("  ")}}

	s := core.NewScreen(4, 2)
	player.Draw(s, 1, 0)
	point.Draw(s, 1, 0)
	point.Draw(s, 1, 1)

	if got := s.GetCell(1, 0); got.Rune != '<' || got.Color != core.ColorBrightCyan || got.Background != core.ColorGray {
		t.Errorf("player cell under point = %+v", got)
	}
	if got := s.GetCell(2, 1); got.Rune != ' ' || got.Background != core.ColorGray {
		t.Errorf("bare point cell = %+v", got)
	}
	if got := s.GetCell(0, 0); got.Background != core.ColorDefault {
		t.Errorf("cell outside sprite touched: %+v", got)
	}
}
