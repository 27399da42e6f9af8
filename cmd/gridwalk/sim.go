package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridwalk/internal/game"
	"github.com/vovakirdan/gridwalk/internal/platform/tui"
)

var (
	flagMoves   string
	flagCellW   int
	flagCellH   int
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a move trace without a terminal",
	Long: `Apply a sequence of moves to a fresh game and print the result.

Moves are U, D, L, R (any case); spaces, commas and dashes are ignored.
The cell size comes from the player sprite unless --cell-w/--cell-h
are given.

Examples:
  gridwalk sim --moves RRRDD
  gridwalk sim --moves "RR DLL DRR" --verbose
  gridwalk sim --moves RRRDD --cell-w 10 --cell-h 10`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move trace, e.g. RRDDL")
	simCmd.Flags().IntVar(&flagCellW, "cell-w", 0, "Cell width (default: player sprite width)")
	simCmd.Flags().IntVar(&flagCellH, "cell-h", 0, "Cell height (default: player sprite height)")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the state after every move")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cell := game.CellSize{W: flagCellW, H: flagCellH}
	if cell.W == 0 || cell.H == 0 {
		atlas, err := loadAtlas(cmd.Context(), cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sprite, _ := tui.CellSize(atlas)
		if cell.W == 0 {
			cell.W = sprite.W
		}
		if cell.H == 0 {
			cell.H = sprite.H
		}
	}

	if err := simulate(os.Stdout, cfg.GridSettings(), cell, flagMoves, flagVerbose, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs trace against a fresh state and writes the final snapshot,
// and every intermediate one when verbose is set.
func simulate(w io.Writer, grid game.GridSettings, cell game.CellSize, trace string, verbose bool, logger *log.Logger) error {
	dirs, err := game.ParseDirections(trace)
	if err != nil {
		return err
	}

	var rounds []game.RoundSummary
	state, err := game.New(grid, cell,
		game.WithLogger(logger),
		game.WithRoundObserver(func(sum game.RoundSummary) {
			rounds = append(rounds, sum)
		}),
	)
	if err != nil {
		return err
	}

	for i, d := range dirs {
		if err := state.HandleInput(d); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(w, "%3d %-5s %s\n", i+1, d, formatSnapshot(state.Snapshot()))
		}
	}

	for _, r := range rounds {
		fmt.Fprintf(w, "completed round %d: %dx%d in %d moves\n", r.Round, r.CellsPerSide, r.CellsPerSide, r.Moves)
	}
	fmt.Fprintln(w, formatSnapshot(state.Snapshot()))
	return nil
}

func formatSnapshot(s game.Snapshot) string {
	return fmt.Sprintf("round %d  grid %dx%d  player (%d,%d)  points %d/%d  moves %d",
		s.Round, s.CellsPerSide, s.CellsPerSide, s.PlayerX, s.PlayerY, s.Points, s.Capacity, s.Moves)
}
