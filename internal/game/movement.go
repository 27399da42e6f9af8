package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridwalk/internal/events"
)

// Direction is a logical movement command.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirRight
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

func (d Direction) eventKind() (events.Kind, bool) {
	switch d {
	case DirUp:
		return events.KeyUp, true
	case DirDown:
		return events.KeyDown, true
	case DirRight:
		return events.KeyRight, true
	case DirLeft:
		return events.KeyLeft, true
	}
	return 0, false
}

// ParseDirections reads a move trace such as "RRDDL" (U, D, L, R; case and
// separators ignored).
func ParseDirections(trace string) ([]Direction, error) {
	var out []Direction
	for i, r := range strings.ToUpper(trace) {
		switch r {
		case 'U':
			out = append(out, DirUp)
		case 'D':
			out = append(out, DirDown)
		case 'R':
			out = append(out, DirRight)
		case 'L':
			out = append(out, DirLeft)
		case ' ', ',', '-':
		default:
			return nil, fmt.Errorf("game: invalid move %q at %d", r, i)
		}
	}
	return out, nil
}

// subscribePlayer registers the directional and progression handlers for a
// freshly spawned player.
func (s *State) subscribePlayer(id EntityID) {
	owner := events.Owner(id)
	s.bus.Register(events.KeyUp, owner, stepHandler(0, -1))
	s.bus.Register(events.KeyDown, owner, stepHandler(0, 1))
	s.bus.Register(events.KeyRight, owner, stepHandler(1, 0))
	s.bus.Register(events.KeyLeft, owner, stepHandler(-1, 0))
	s.bus.Register(events.PlayerMoved, owner, onPlayerMoved)
}

func stepHandler(dx, dy int) events.Handler[*State] {
	return func(s *State, owner events.Owner) error {
		return s.step(EntityID(owner), dx, dy)
	}
}

// step moves the player one cell if the target stays on the grid.
// A blocked step changes nothing and emits nothing.
func (s *State) step(id EntityID, dx, dy int) error {
	p := s.player(id)
	if p == nil {
		return nil
	}

	w, h := s.Viewport()
	nx := p.X + dx*s.cell.W
	ny := p.Y + dy*s.cell.H
	if nx < 0 || nx > w-s.cell.W || ny < 0 || ny > h-s.cell.H {
		return nil
	}

	p.X, p.Y = nx, ny
	s.moves++
	s.totalMoves++
	return s.bus.Emit(s, events.PlayerMoved)
}
