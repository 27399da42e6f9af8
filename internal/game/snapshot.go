package game

// Snapshot captures the observable game state for tests and the headless
// simulator.
type Snapshot struct {
	Round        int
	CellsPerSide int
	OriginX      int
	OriginY      int
	PlayerX      int
	PlayerY      int
	Points       int
	Capacity     int
	Moves        int
	TotalMoves   int
	ViewportW    int
	ViewportH    int
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	w, h := s.Viewport()
	snap := Snapshot{
		Round:        s.round,
		CellsPerSide: s.grid.CellsPerSide,
		OriginX:      s.grid.OriginX,
		OriginY:      s.grid.OriginY,
		Points:       len(s.points),
		Capacity:     s.grid.Capacity(),
		Moves:        s.moves,
		TotalMoves:   s.totalMoves,
		ViewportW:    w,
		ViewportH:    h,
	}
	if p, ok := s.Player(); ok {
		snap.PlayerX, snap.PlayerY = p.X, p.Y
	}
	return snap
}
