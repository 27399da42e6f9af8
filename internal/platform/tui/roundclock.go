package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridwalk/internal/game"
	"github.com/vovakirdan/gridwalk/internal/storage"
)

// roundClock times rounds and writes completed ones to the journal.
// It is driven from the Bubble Tea update goroutine only.
type roundClock struct {
	store  *storage.Store
	logger *log.Logger
	now    func() time.Time
	start  time.Time

	// fastest per grid side, refreshed after each recorded round
	fastest map[int]time.Duration
}

func newRoundClock(store *storage.Store, logger *log.Logger, now func() time.Time) *roundClock {
	return &roundClock{
		store:   store,
		logger:  logger,
		now:     now,
		start:   now(),
		fastest: make(map[int]time.Duration),
	}
}

// Record is the game's round observer.
func (c *roundClock) Record(sum game.RoundSummary) {
	end := c.now()
	elapsed := end.Sub(c.start)
	c.start = end

	c.logger.Info("round complete",
		"round", sum.Round,
		"cells", sum.CellsPerSide,
		"moves", sum.Moves,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	if c.store == nil {
		return
	}
	_, err := c.store.SaveRound(storage.RoundEntry{
		Round:        sum.Round,
		CellsPerSide: sum.CellsPerSide,
		Points:       sum.Points,
		Moves:        sum.Moves,
		Duration:     elapsed,
	})
	if err != nil {
		c.logger.Warn("could not record round", "error", err)
		return
	}

	best, ok, err := c.store.FastestRound(sum.CellsPerSide)
	if err != nil {
		c.logger.Warn("could not read fastest round", "error", err)
		return
	}
	if ok {
		c.fastest[sum.CellsPerSide] = best
	}
}

// Restart starts timing a fresh round without recording the current one.
func (c *roundClock) Restart() {
	c.start = c.now()
}

// Elapsed is the time spent in the current round.
func (c *roundClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Fastest returns the quickest recorded round for a grid side.
func (c *roundClock) Fastest(cellsPerSide int) (time.Duration, bool) {
	d, ok := c.fastest[cellsPerSide]
	return d, ok
}

// Recent returns the latest journal entries, newest first.
func (c *roundClock) Recent(limit int) []storage.RoundEntry {
	if c.store == nil {
		return nil
	}
	entries, err := c.store.Rounds(limit)
	if err != nil {
		c.logger.Warn("could not load journal", "error", err)
		return nil
	}
	return entries
}
