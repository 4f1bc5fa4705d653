// Package world provides cave generation and tile classification.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileSolid represents impassable rock. Every cell starts as solid.
	TileSolid Tile = '#'
	// TileFloor represents a carved, walkable tile.
	TileFloor Tile = '.'
	// TileEdge represents a solid tile orthogonally adjacent to a floor tile.
	TileEdge Tile = '+'
	// TileIsland represents solid rock with no floor-free path to the grid border.
	TileIsland Tile = '~'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileSolid:
		return "solid"
	case TileFloor:
		return "floor"
	case TileEdge:
		return "edge"
	case TileIsland:
		return "island"
	default:
		return "unknown"
	}
}

// ParseTile returns the tile for a display character.
func ParseTile(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case TileSolid, TileFloor, TileEdge, TileIsland:
		return t, true
	default:
		return TileSolid, false
	}
}
