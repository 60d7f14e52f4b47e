package model

// Direction names one of the eight adjacency slots of a cell
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every adjacency slot clockwise from North
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionNames = [8]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// offsets are the coordinate deltas of each direction, y grows southward
var offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Opposite returns the direction pointing back at the caller
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Offset returns the (dx, dy) step taken when following d. Unknown directions do not move.
func (d Direction) Offset() (int, int) {
	if int(d) >= len(offsets) {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}
