package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/randommarch/internal/world"
)

// Renderer handles drawing caves to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid, with the status line on the row below it.
func (r *Renderer) Render(grid *world.Grid, status string) {
	r.screen.Clear()

	width, height := grid.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := grid.Get(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	r.RenderMessage(status, height)
	r.screen.Show()
}

// tileStyle returns the style for a tile kind.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.palette.Color(tile))
	if tile == world.TileIsland {
		style = style.Bold(true)
	}
	return style
}

// RenderMessage writes a message starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
