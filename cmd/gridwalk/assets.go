package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridwalk/internal/assets"
	"github.com/vovakirdan/gridwalk/internal/core"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the resolved sprites",
	Long: `Resolves every sprite the game draws and prints its size and source.
The player sprite size is the grid cell size.`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, _ []string) {
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

	atlas, err := loadAtlas(cmd.Context(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printAtlas(os.Stdout, atlas)
}

// printAtlas lists sprites by name with a preview of each.
func printAtlas(w io.Writer, atlas assets.Atlas) {
	names := make([]string, 0, len(atlas))
	for name := range atlas {
		names = append(names, name)
	}
	sort.Strings(names)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxNameLen, "Name", "Size", "Source")
	fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxNameLen, "----", "----", "------")

	for _, name := range names {
		tex := atlas[name]
		fmt.Fprintf(w, "  %-*s  %-5s  %s\n", maxNameLen, name, fmt.Sprintf("%dx%d", tex.Width, tex.Height), tex.Source)
	}

	for _, name := range names {
		tex := atlas[name]
		screen := core.NewScreen(tex.Width, tex.Height)
		tex.Draw(screen, 0, 0)
		fmt.Fprintf(w, "\n%s:\n%s\n", name, screen.String())
	}
}
