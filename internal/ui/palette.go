package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/randommarch/internal/config"
	"github.com/samdwyer/randommarch/internal/world"
)

// Palette maps tile kinds to terminal colours.
type Palette struct {
	Solid  tcell.Color
	Floor  tcell.Color
	Edge   tcell.Color
	Island tcell.Color
}

// NewPalette parses the configured hex colours.
func NewPalette(cfg config.PaletteConfig) (Palette, error) {
	var p Palette
	var err error
	if p.Solid, err = ParseHexColor(cfg.Solid); err != nil {
		return Palette{}, fmt.Errorf("palette solid: %w", err)
	}
	if p.Floor, err = ParseHexColor(cfg.Floor); err != nil {
		return Palette{}, fmt.Errorf("palette floor: %w", err)
	}
	if p.Edge, err = ParseHexColor(cfg.Edge); err != nil {
		return Palette{}, fmt.Errorf("palette edge: %w", err)
	}
	if p.Island, err = ParseHexColor(cfg.Island); err != nil {
		return Palette{}, fmt.Errorf("palette island: %w", err)
	}
	return p, nil
}

// Color returns the colour for a tile kind.
func (p Palette) Color(tile world.Tile) tcell.Color {
	switch tile {
	case world.TileSolid:
		return p.Solid
	case world.TileFloor:
		return p.Floor
	case world.TileEdge:
		return p.Edge
	case world.TileIsland:
		return p.Island
	default:
		return tcell.ColorDefault
	}
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
