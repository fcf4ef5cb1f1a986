package component

import "fmt"

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Add returns p shifted one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four cardinal directions, ordered clockwise so
// that Rotate steps 90°.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every cardinal direction in rotation order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the (dx, dy) step for d. Y grows downward.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Rotate returns the next direction clockwise.
func (d Direction) Rotate() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}
