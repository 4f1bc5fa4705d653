package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samdwyer/randommarch/internal/ui"
	"github.com/samdwyer/randommarch/internal/world"
)

var (
	flagColor bool
	flagFit   bool
	flagStats bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a cave as text",
	Long: `Generate a single cave and write it to stdout.

Legend:
  #  solid rock
  .  floor
  +  edge (rock touching floor)
  ~  island (rock enclosed by floor)

Examples:
  randommarch generate --seed 42
  randommarch generate --fit --color
  randommarch generate --walkers 0 --stats`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagColor, "color", false, "Colour tiles using the palette")
	generateCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
	generateCmd.Flags().BoolVar(&flagStats, "stats", false, "Print tile counts after the cave")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	params := resolveParams()

	if flagFit {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			params.Width = w
			params.Height = h - 1 // Leave room for the prompt
		} else {
			app.logger.Warn("cannot read terminal size, keeping configured size", "error", err)
		}
	}

	start := time.Now()
	grid := world.Generate(cmd.Context(), params)
	app.logger.Debug("generation finished", "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if err := ui.WriteText(out, grid, app.cfg.Palette, flagColor); err != nil {
		return fmt.Errorf("write cave: %w", err)
	}
	if flagStats {
		fmt.Fprintln(out, ui.StatsLine(params.Seed, grid))
	}
	return nil
}
