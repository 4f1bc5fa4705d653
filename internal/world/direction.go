package world

// Direction is a unit step in grid space.
type Direction struct {
	X, Y int
}

// Zero is the no-movement direction used when every direction is blocked.
var Zero = Direction{}

// Directions lists the eight walker directions. The order is fixed because
// walkers index into it with random draws.
var Directions = [8]Direction{
	{0, 1},   // +y
	{0, -1},  // -y
	{-1, 0},  // -x
	{1, 0},   // +x
	{1, 1},   // +x +y
	{-1, 1},  // -x +y
	{1, -1},  // +x -y
	{-1, -1}, // -x -y
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.X, -d.Y}
}
