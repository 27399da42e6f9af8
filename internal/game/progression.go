package game

import "github.com/vovakirdan/gridwalk/internal/events"

// onPlayerMoved collects a point on a newly visited cell and grows the grid
// once every cell holds one.
func onPlayerMoved(s *State, owner events.Owner) error {
	p := s.player(EntityID(owner))
	if p == nil {
		return nil
	}
	pos := p.Pos()

	if s.hasPointAt(pos) {
		return nil // already visited
	}
	s.points = append(s.points, s.spawn(KindPoint, AssetPoint, pos.X, pos.Y))

	s.checkProgression(pos)
	return nil
}

func (s *State) hasPointAt(pos Position) bool {
	for _, pt := range s.points {
		if pt.Pos() == pos {
			return true
		}
	}
	return false
}

// checkProgression advances the grid and resets when the round is complete.
func (s *State) checkProgression(anchor Position) {
	if len(s.points) < s.grid.Capacity() {
		return
	}

	summary := RoundSummary{
		Round:        s.round,
		CellsPerSide: s.grid.CellsPerSide,
		Points:       len(s.points),
		Moves:        s.moves,
	}
	if s.observer != nil {
		s.observer(summary)
	}

	prev := s.grid.CellsPerSide
	s.grid = s.grid.advance(anchor)
	s.logger.Info("grid complete",
		"round", summary.Round,
		"moves", summary.Moves,
		"from", prev,
		"to", s.grid.CellsPerSide,
	)

	s.Reset()
}
