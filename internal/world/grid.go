package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/queue"
)

// Default grid dimensions, sized to a standard terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Grid is a fixed-size rectangular map of tiles.
// Coordinates outside the grid read as solid rock and ignore writes.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// Stats holds per-kind tile counts for a grid.
type Stats struct {
	Solid  int
	Floor  int
	Edge   int
	Island int
}

// point is a grid coordinate used by the flood fill work queue.
type point struct {
	x, y int
}

// NewGrid creates a new grid filled with solid rock.
// Non-positive dimensions produce an empty grid with no tiles.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileSolid
		}
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// InBounds returns true if the position lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position, or TileSolid outside the grid.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileSolid
	}
	return g.tiles[y][x]
}

// Set writes the tile at the given position. Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, tile Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y][x] = tile
}

// IsFloor returns true if the position holds a floor tile.
func (g *Grid) IsFloor(x, y int) bool { return g.Get(x, y) == TileFloor }

// IsSolid returns true if the position holds unclassified solid rock.
func (g *Grid) IsSolid(x, y int) bool { return g.Get(x, y) == TileSolid }

// IsWall is an alias for IsSolid.
func (g *Grid) IsWall(x, y int) bool { return g.IsSolid(x, y) }

// IsEdge returns true if the position holds an edge tile.
func (g *Grid) IsEdge(x, y int) bool { return g.Get(x, y) == TileEdge }

// IsIsland returns true if the position holds an island tile.
func (g *Grid) IsIsland(x, y int) bool { return g.Get(x, y) == TileIsland }

// DetectEdges promotes every solid tile orthogonally adjacent to a floor tile to an edge tile.
// Only solid tiles are ever promoted, so the result does not depend on scan order.
func (g *Grid) DetectEdges() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] != TileFloor {
				continue
			}
			g.promoteEdge(x, y+1)
			g.promoteEdge(x, y-1)
			g.promoteEdge(x+1, y)
			g.promoteEdge(x-1, y)
		}
	}
}

// promoteEdge turns a solid tile into an edge tile.
func (g *Grid) promoteEdge(x, y int) {
	if g.InBounds(x, y) && g.tiles[y][x] == TileSolid {
		g.tiles[y][x] = TileEdge
	}
}

// IdentifyIslands marks solid and edge tiles that cannot reach the grid border
// without crossing a floor tile as islands.
//
// Every border cell seeds a single breadth-first fill. Floor and island tiles
// block the fill; solid and edge tiles are visited and expand to their four
// orthogonal neighbours. Whatever solid rock the fill never reaches is enclosed.
func (g *Grid) IdentifyIslands() {
	visited := make([][]bool, g.height)
	for y := range visited {
		visited[y] = make([]bool, g.width)
	}

	toVisit := queue.New[point]()
	for x := 0; x < g.width; x++ {
		toVisit.Enqueue(point{x, 0})
		toVisit.Enqueue(point{x, g.height - 1})
	}
	for y := 0; y < g.height; y++ {
		toVisit.Enqueue(point{0, y})
		toVisit.Enqueue(point{g.width - 1, y})
	}

	for !toVisit.Empty() {
		p := toVisit.Dequeue()

		// Neighbours are enqueued unfiltered; discard them here.
		if !g.InBounds(p.x, p.y) || visited[p.y][p.x] {
			continue
		}
		if t := g.tiles[p.y][p.x]; t == TileFloor || t == TileIsland {
			continue
		}

		visited[p.y][p.x] = true
		toVisit.Enqueue(point{p.x + 1, p.y})
		toVisit.Enqueue(point{p.x - 1, p.y})
		toVisit.Enqueue(point{p.x, p.y + 1})
		toVisit.Enqueue(point{p.x, p.y - 1})
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if visited[y][x] {
				continue
			}
			if t := g.tiles[y][x]; t == TileSolid || t == TileEdge {
				g.tiles[y][x] = TileIsland
			}
		}
	}
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(tile Tile) int {
	count := 0
	for y := range g.tiles {
		for _, t := range g.tiles[y] {
			if t == tile {
				count++
			}
		}
	}
	return count
}

// Stats returns tile counts for every kind.
func (g *Grid) Stats() Stats {
	var s Stats
	for y := range g.tiles {
		for _, t := range g.tiles[y] {
			switch t {
			case TileSolid:
				s.Solid++
			case TileFloor:
				s.Floor++
			case TileEdge:
				s.Edge++
			case TileIsland:
				s.Island++
			}
		}
	}
	return s
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.height)
	for y := range tiles {
		tiles[y] = append([]Tile(nil), g.tiles[y]...)
	}
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Equal returns true if both grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] != other.tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, starting at y=0.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for y := range g.tiles {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, t := range g.tiles[y] {
			b.WriteRune(t.Rune())
		}
	}
	return b.String()
}

// ParseGrid builds a grid from the text produced by String.
func ParseGrid(s string) (*Grid, error) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return NewGrid(0, 0), nil
	}

	lines := strings.Split(s, "\n")
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, errors.New("world: grid has an empty first row")
	}

	g := NewGrid(width, len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("world: row %d has %d tiles, want %d", y, len(row), width)
		}
		for x, r := range row {
			tile, ok := ParseTile(r)
			if !ok {
				return nil, fmt.Errorf("world: unknown tile %q at (%d,%d)", r, x, y)
			}
			g.tiles[y][x] = tile
		}
	}
	return g, nil
}
