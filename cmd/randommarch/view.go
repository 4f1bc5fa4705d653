package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/randommarch/internal/ui"
	"github.com/samdwyer/randommarch/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse caves interactively",
	Long: `Open a full-screen viewer showing one cave at a time.

Controls:
  R          - Regenerate with the next seed
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	palette, err := ui.NewPalette(app.cfg.Palette)
	if err != nil {
		return err
	}

	params := resolveParams()

	// stderr shares the terminal with the viewer
	logger := app.logger
	if app.cfg.Log.File == "" {
		logger = log.New(io.Discard)
	}

	v, err := viewer.New(params, palette, logger)
	if err != nil {
		return err
	}
	return v.Run(cmd.Context())
}
