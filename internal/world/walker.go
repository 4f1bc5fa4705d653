package world

// Source is the random number source a walker draws from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// WalkerParams configures a single carving pass.
type WalkerParams struct {
	Steps                int     // Number of direction choices
	MaxStepLength        int     // Upper bound of each step length (min 1)
	BacktrackProbability float64 // Chance that a sub-step moves against the chosen direction
}

// Walker carves a randomized corridor of floor tiles through a grid.
type Walker struct {
	x, y   int
	params WalkerParams
	width  int
	height int
}

// NewWalker creates a walker at the centre of a width x height grid.
func NewWalker(params WalkerParams, width, height int) *Walker {
	if params.MaxStepLength < 1 {
		params.MaxStepLength = 1
	}
	if params.Steps < 0 {
		params.Steps = 0
	}
	return &Walker{
		x:      width / 2,
		y:      height / 2,
		params: params,
		width:  width,
		height: height,
	}
}

// Params returns the walker's parameters after construction-time clamping.
func (w *Walker) Params() WalkerParams {
	return w.params
}

// Position returns the walker's current position.
func (w *Walker) Position() (int, int) {
	return w.x, w.y
}

// Walk carves the walker's path into the grid, then reclassifies edges and islands.
//
// Draws from rng happen in a fixed order: direction, step length, then one
// backtrack roll per sub-step.
func (w *Walker) Walk(grid *Grid, rng Source) {
	for i := 0; i < w.params.Steps; i++ {
		dir := w.chooseDirection(rng)
		stepLength := 1 + rng.Intn(w.params.MaxStepLength)

		for j := 0; j < stepLength; j++ {
			step := dir
			if rng.Float64() < w.params.BacktrackProbability {
				step = dir.Reverse()
			}
			w.x += step.X
			w.y += step.Y

			// Keep the outer ring out of reach of the walker itself
			w.x = clamp(w.x, 1, w.width-2)
			w.y = clamp(w.y, 1, w.height-2)

			grid.Set(w.x, w.y, TileFloor)
			w.widen(grid, dir)
		}
	}

	grid.DetectEdges()
	grid.IdentifyIslands()
}

// widen carves one tile either side of the walker, perpendicular to its direction.
// Diagonal directions widen vertically, like horizontal moves.
func (w *Walker) widen(grid *Grid, dir Direction) {
	if dir.X != 0 {
		if w.y+1 < w.height {
			grid.Set(w.x, w.y+1, TileFloor)
		}
		if w.y-1 >= 0 {
			grid.Set(w.x, w.y-1, TileFloor)
		}
	} else if dir.Y != 0 {
		if w.x+1 < w.width {
			grid.Set(w.x+1, w.y, TileFloor)
		}
		if w.x-1 >= 0 {
			grid.Set(w.x-1, w.y, TileFloor)
		}
	}
}

// chooseDirection picks a random direction that does not push against a grid boundary.
func (w *Walker) chooseDirection(rng Source) Direction {
	valid := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if w.x <= 0 && d.X == -1 {
			continue
		}
		if w.x >= w.width-1 && d.X == 1 {
			continue
		}
		if w.y <= 0 && d.Y == -1 {
			continue
		}
		if w.y >= w.height-1 && d.Y == 1 {
			continue
		}
		valid = append(valid, d)
	}

	if len(valid) == 0 {
		return Zero
	}
	return valid[rng.Intn(len(valid))]
}

// clamp limits v to [lo, hi], checking the lower bound first.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
