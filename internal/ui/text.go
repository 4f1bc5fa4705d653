package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/randommarch/internal/config"
	"github.com/samdwyer/randommarch/internal/world"
)

// WriteText writes the grid to w one row per line.
// With color set, runs of equal tiles are styled with the palette; lipgloss
// drops the styling when w is not a colour-capable terminal.
func WriteText(w io.Writer, grid *world.Grid, palette config.PaletteConfig, color bool) error {
	if !color {
		if grid.Height() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, grid.String())
		return err
	}

	renderer := lipgloss.NewRenderer(w)
	styles := map[world.Tile]lipgloss.Style{
		world.TileSolid:  renderer.NewStyle().Foreground(lipgloss.Color(hexColor(palette.Solid))),
		world.TileFloor:  renderer.NewStyle().Foreground(lipgloss.Color(hexColor(palette.Floor))),
		world.TileEdge:   renderer.NewStyle().Foreground(lipgloss.Color(hexColor(palette.Edge))),
		world.TileIsland: renderer.NewStyle().Foreground(lipgloss.Color(hexColor(palette.Island))).Bold(true),
	}

	width, height := grid.Dimensions()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; {
			tile := grid.Get(x, y)
			run := x
			for run < width && grid.Get(run, y) == tile {
				run++
			}
			b.WriteString(styles[tile].Render(strings.Repeat(string(tile.Rune()), run-x)))
			x = run
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// hexColor normalizes a palette entry to the "#RRGGBB" form lipgloss expects.
func hexColor(s string) string {
	if strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}

// StatsLine summarizes a grid for status bars and logs.
func StatsLine(seed int64, grid *world.Grid) string {
	s := grid.Stats()
	w, h := grid.Dimensions()
	return fmt.Sprintf("seed %d  %dx%d  floor %d  edge %d  island %d  solid %d",
		seed, w, h, s.Floor, s.Edge, s.Island, s.Solid)
}
