package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/platform/tui"
	"github.com/vovakirdan/gridwalk/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Move
  R                - Restart the round
  Tab              - Round journal
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Logs are discarded unless --log-file is given, so they do not
corrupt the screen.

Examples:
  gridwalk play
  gridwalk play --fps 60 --log-file gridwalk.log --log-level debug
  gridwalk play --config ./my-gridwalk.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	atlas, err := loadAtlas(cmd.Context(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without the journal - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Loop.FPS,
		},
		Grid:         cfg.GridSettings(),
		Atlas:        atlas,
		Store:        store,
		RepeatWindow: cfg.Input.RepeatWindow,
		Logger:       logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
