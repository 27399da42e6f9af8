package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 4)
	want := Cell{Rune: '@', Color: ColorBrightCyan, Background: ColorGray}

	s.SetCell(2, 1, want)
	if got := s.GetCell(2, 1); got != want {
		t.Errorf("GetCell(2, 1) = %+v, expected %+v", got, want)
	}

	// Set replaces the whole cell, colors included.
	s.Set(2, 1, 'x')
	if got := s.GetCell(2, 1); got != (Cell{Rune: 'x'}) {
		t.Errorf("after Set, GetCell(2, 1) = %+v", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	points := []struct{ x, y int }{{-1, 0}, {3, 0}, {0, -1}, {0, 2}, {99, 99}}

	for _, p := range points {
		s.SetCell(p.x, p.y, Cell{Rune: '#', Color: ColorRed})
		s.SetBackground(p.x, p.y, ColorGray)
		if got := s.GetCell(p.x, p.y); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p.x, p.y, got)
		}
		if got := s.Get(p.x, p.y); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p.x, p.y, got)
		}
	}
	if got := s.String(); got != "   \n   " {
		t.Errorf("out of bounds writes leaked: %q", got)
	}
}

func TestScreenSetBackgroundKeepsRune(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: '@', Color: ColorBrightCyan})
	s.SetBackground(1, 1, ColorGray)
	s.SetBackground(2, 2, ColorGray)

	if got, want := s.GetCell(1, 1), (Cell{Rune: '@', Color: ColorBrightCyan, Background: ColorGray}); got != want {
		t.Errorf("GetCell(1, 1) = %+v, expected %+v", got, want)
	}
	if got, want := s.GetCell(2, 2), (Cell{Rune: ' ', Background: ColorGray}); got != want {
		t.Errorf("GetCell(2, 2) = %+v, expected %+v", got, want)
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(0, 0, Cell{Rune: 'a', Color: ColorRed, Background: ColorGray})
	s.SetBackground(2, 2, ColorGray)

	s.Clear()

	for _, p := range []struct{ x, y int }{{0, 0}, {2, 2}} {
		if got := s.GetCell(p.x, p.y); got != blankCell {
			t.Errorf("after Clear, GetCell(%d, %d) = %+v", p.x, p.y, got)
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(4, 0, "grid")
	s.DrawText(-2, 1, "walk")

	if got := s.String(); got != "    gr\nlk    " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(0, 0, Cell{Rune: 'p', Color: ColorBrightCyan})
	s.SetBackground(1, 0, ColorGray)
	s.DrawText(0, 3, "gone")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.GetCell(0, 0); got.Rune != 'p' || got.Color != ColorBrightCyan {
		t.Errorf("GetCell(0, 0) = %+v after shrink", got)
	}
	if got := s.GetCell(1, 0); got.Background != ColorGray {
		t.Errorf("GetCell(1, 0) lost background: %+v", got)
	}

	s.Resize(6, 4)
	if got := s.Row(3); got != "      " {
		t.Errorf("cropped row came back: %q", got)
	}
	if got := s.GetCell(0, 0); got.Rune != 'p' {
		t.Errorf("GetCell(0, 0) = %+v after grow", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(1, 1, "ab")

	tests := []struct {
		y    int
		want string
	}{
		{0, "     "},
		{1, " ab  "},
		{-1, "     "},
		{2, "     "},
	}
	for _, tc := range tests {
		if got := s.Row(tc.y); got != tc.want {
			t.Errorf("Row(%d) = %q, expected %q", tc.y, got, tc.want)
		}
	}
	if got := s.String(); got != strings.Join([]string{s.Row(0), s.Row(1)}, "\n") {
		t.Errorf("String() = %q disagrees with Row", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorGray)

	corners := []struct {
		x, y int
		ch   rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.GetCell(c.x, c.y); got.Rune != c.ch || got.Color != ColorGray {
			t.Errorf("corner at (%d, %d) = %+v, expected %q gray", c.x, c.y, got, c.ch)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}
