// Package engine implements the maze chase simulation: a player collecting
// pellets on a grid while four pursuers hunt it under a scripted
// scatter/chase schedule.
// This package is UI-agnostic and deterministic for a given seed and
// sequence of Advance deltas.
package engine

import "fmt"

// Coord represents a cell on the maze grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the component-wise difference c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Step returns a new Coord one cell in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// DistSq returns the squared Euclidean distance to another coordinate.
func (c Coord) DistSq(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Dir is a movement direction. The declaration order of the four real
// directions is the tie-break priority used by pursuers.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// Directions lists the four movement directions in tie-break priority order.
var Directions = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one cell in this direction.
// Up decreases Y, Down increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}
