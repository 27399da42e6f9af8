// gridwalk is a terminal grid-walking game: visit every cell of the grid to
// grow it, then start again from where you stand.
//
// Usage:
//
//	gridwalk play                - Play in this terminal
//	gridwalk sim --moves RRDD    - Run a move trace headless and print the result
//	gridwalk serve               - Start SSH server for remote play
//	gridwalk assets              - Show the resolved sprites
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.gridwalk/config.yaml, ./configs/gridwalk.yaml)
//	--fps <rate>        - Frame rate
//	--asset-dir <dir>   - Extra sprite directory
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridwalk/internal/assets"
	"github.com/vovakirdan/gridwalk/internal/config"
	"github.com/vovakirdan/gridwalk/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagAssetDir string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridwalk",
	Short: "gridwalk - fill the grid, watch it grow",
	Long: `gridwalk is a terminal game. Walk the player over every cell of the
grid; each new cell leaves a marker. A full grid grows by two cells per
side (3, 5, 7, 9, then back to 3) and play continues from where you stood.

Available commands:
  play     - Play in this terminal
  sim      - Run a move trace without a terminal
  serve    - Start SSH server for remote play
  assets   - Show the resolved sprites

Examples:
  gridwalk play
  gridwalk play --fps 60
  gridwalk sim --moves RRRDD
  gridwalk serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAssetDir, "asset-dir", "", "Extra directory searched for sprites")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
}

// loadConfig loads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("asset-dir") {
		cfg.Assets.Dir = flagAssetDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. With no log file, fallback receives
// the output. The returned close func must be called on exit.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridwalk",
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn, nil
}

// loadAtlas loads every sprite the game draws. Any failure aborts startup.
func loadAtlas(ctx context.Context, cfg config.Config, logger *log.Logger) (assets.Atlas, error) {
	loader := assets.NewLoader(cfg.Assets.Dir, logger)
	loader.Paths[string(game.AssetPlayer)] = cfg.Assets.Player
	loader.Paths[string(game.AssetPoint)] = cfg.Assets.Point

	atlas, err := loader.LoadAll(ctx, string(game.AssetPlayer), string(game.AssetPoint))
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}
	return atlas, nil
}
