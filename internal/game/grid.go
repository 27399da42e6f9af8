package game

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned for grid or cell settings that cannot be played.
var ErrInvalidSettings = errors.New("game: invalid settings")

// DefaultGrowthStep is how many cells per side the grid grows after a full round.
const DefaultGrowthStep = 2

// GridSettings describes the current grid and the bounds it cycles within.
type GridSettings struct {
	CellsPerSide    int
	MinCellsPerSide int
	MaxCellsPerSide int
	Step            int // growth per round, DefaultGrowthStep if zero

	// Origin anchors the player and the first point after a reset.
	OriginX int
	OriginY int
}

// DefaultGridSettings returns the 3..9 cycle starting at (0, 0).
func DefaultGridSettings() GridSettings {
	return GridSettings{
		CellsPerSide:    3,
		MinCellsPerSide: 3,
		MaxCellsPerSide: 9,
		Step:            DefaultGrowthStep,
	}
}

// CellSize is the size of one grid cell, taken from the player asset.
type CellSize struct {
	W, H int
}

// Validate checks the settings against a cell size.
func (g GridSettings) Validate(cell CellSize) error {
	switch {
	case cell.W <= 0 || cell.H <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidSettings, cell.W, cell.H)
	case g.MinCellsPerSide < 2:
		// A 1x1 grid is full on arrival and has no legal move to finish it.
		return fmt.Errorf("%w: min cells per side %d below 2", ErrInvalidSettings, g.MinCellsPerSide)
	case g.MinCellsPerSide > g.MaxCellsPerSide:
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidSettings, g.MinCellsPerSide, g.MaxCellsPerSide)
	case g.CellsPerSide < g.MinCellsPerSide || g.CellsPerSide > g.MaxCellsPerSide:
		return fmt.Errorf("%w: cells per side %d outside [%d, %d]",
			ErrInvalidSettings, g.CellsPerSide, g.MinCellsPerSide, g.MaxCellsPerSide)
	case g.Step < 0:
		return fmt.Errorf("%w: negative step %d", ErrInvalidSettings, g.Step)
	}

	if g.OriginX%cell.W != 0 || g.OriginY%cell.H != 0 {
		return fmt.Errorf("%w: origin (%d, %d) not on the cell grid", ErrInvalidSettings, g.OriginX, g.OriginY)
	}
	w, h := g.CellsPerSide*cell.W, g.CellsPerSide*cell.H
	if g.OriginX < 0 || g.OriginX >= w || g.OriginY < 0 || g.OriginY >= h {
		return fmt.Errorf("%w: origin (%d, %d) outside %dx%d", ErrInvalidSettings, g.OriginX, g.OriginY, w, h)
	}
	return nil
}

// Capacity is the number of distinct cells to visit before the grid grows.
func (g GridSettings) Capacity() int {
	return g.CellsPerSide * g.CellsPerSide
}

// advance returns the settings for the next round. Growth keeps the anchor
// so the next round starts where this one ended; wrapping to the minimum
// returns to (0, 0) since the anchor may not fit the smaller grid.
func (g GridSettings) advance(anchor Position) GridSettings {
	step := g.Step
	if step == 0 {
		step = DefaultGrowthStep
	}

	next := g
	if g.CellsPerSide >= g.MaxCellsPerSide || g.CellsPerSide+step > g.MaxCellsPerSide {
		next.CellsPerSide = g.MinCellsPerSide
		next.OriginX, next.OriginY = 0, 0
		return next
	}
	next.CellsPerSide += step
	next.OriginX, next.OriginY = anchor.X, anchor.Y
	return next
}
