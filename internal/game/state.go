// Package game implements the grid-walk state machine: a single player token
// walks an N x N grid, every newly visited cell leaves a point, and a fully
// covered grid grows (cycling between min and max) and resets.
//
// All state lives in State and is mutated only through its methods. The
// package has no terminal dependencies; the platform layer feeds it
// directions and renders its entities.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridwalk/internal/events"
)

// RoundSummary describes a round that just ended by filling the grid.
type RoundSummary struct {
	Round        int
	CellsPerSide int
	Points       int
	Moves        int
}

// State is the single owner of all game data.
type State struct {
	grid GridSettings
	cell CellSize

	players []Entity
	points  []Entity
	bus     *events.Bus[*State]
	nextID  EntityID

	round      int
	moves      int // successful moves this round
	totalMoves int

	logger   *log.Logger
	observer func(RoundSummary)
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for round transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoundObserver registers a callback invoked once per completed round,
// before the reset that follows it.
func WithRoundObserver(fn func(RoundSummary)) Option {
	return func(s *State) {
		s.observer = fn
	}
}

// New validates the settings and initializes the first round.
// cell is the pixel (or character) size of one grid cell.
func New(grid GridSettings, cell CellSize, opts ...Option) (*State, error) {
	if grid.Step == 0 {
		grid.Step = DefaultGrowthStep
	}
	if err := grid.Validate(cell); err != nil {
		return nil, err
	}

	s := &State{
		grid:   grid,
		cell:   cell,
		bus:    events.NewBus[*State](),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.init()
	return s, nil
}

// init builds the entities for a round and subscribes the player's handlers.
func (s *State) init() {
	s.round++
	s.moves = 0

	player := s.spawn(KindPlayer, AssetPlayer, s.grid.OriginX, s.grid.OriginY)
	s.players = append(s.players, player)
	s.points = append(s.points, s.spawn(KindPoint, AssetPoint, s.grid.OriginX, s.grid.OriginY))

	s.subscribePlayer(player.ID)

	s.logger.Debug("round started",
		"round", s.round,
		"cells", s.grid.CellsPerSide,
		"origin", fmt.Sprintf("%d,%d", s.grid.OriginX, s.grid.OriginY),
	)
}

// Reset drops every entity and subscription and starts a new round with
// the current settings.
func (s *State) Reset() {
	s.players = nil
	s.points = nil
	s.bus.Clear()
	s.init()
}

func (s *State) spawn(kind Kind, asset AssetRef, x, y int) Entity {
	s.nextID++
	return Entity{ID: s.nextID, Kind: kind, Asset: asset, X: x, Y: y}
}

// player returns the live player with the given id, or nil.
func (s *State) player(id EntityID) *Entity {
	for i := range s.players {
		if s.players[i].ID == id {
			return &s.players[i]
		}
	}
	return nil
}

// HandleInput feeds one logical directional command into the bus.
func (s *State) HandleInput(d Direction) error {
	kind, ok := d.eventKind()
	if !ok {
		return nil
	}
	if err := s.bus.Emit(s, kind); err != nil {
		return fmt.Errorf("game: handle %s: %w", d, err)
	}
	return nil
}

// Entities returns every entity in draw order: players, then points, each
// in insertion order.
func (s *State) Entities() []Entity {
	out := make([]Entity, 0, len(s.players)+len(s.points))
	out = append(out, s.players...)
	out = append(out, s.points...)
	return out
}

// Player returns the current player.
func (s *State) Player() (Entity, bool) {
	if len(s.players) == 0 {
		return Entity{}, false
	}
	return s.players[0], true
}

// Points returns a copy of the collected points.
func (s *State) Points() []Entity {
	return append([]Entity(nil), s.points...)
}

// Settings returns the current grid settings.
func (s *State) Settings() GridSettings {
	return s.grid
}

// Cell returns the cell size.
func (s *State) Cell() CellSize {
	return s.cell
}

// Viewport returns the playfield size for the current grid.
func (s *State) Viewport() (w, h int) {
	return s.grid.CellsPerSide * s.cell.W, s.grid.CellsPerSide * s.cell.H
}

// Round returns the 1-based round number.
func (s *State) Round() int {
	return s.round
}

// Moves returns successful moves in the current round.
func (s *State) Moves() int {
	return s.moves
}
