package gridgraph

import (
	"math"
	"strconv"
)

// Cost is the movement cost to enter a cell. 0 is free terrain.
type Cost = uint8

// Impassable marks a cell that can never be entered.
const Impassable Cost = math.MaxUint8

// Point addresses a cell. Valid grid coordinates are non-negative; negative
// values are representable so that callers can test them with InBounds.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Offsets4 lists the orthogonal neighbor offsets in N, E, S, W order.
var Offsets4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a fixed-size rectangular domain with one Cost per cell.
// Cells are stored row-major: index = y*width + x.
// Invariant: len(cells) == width*height.
type Grid struct {
	width, height int
	cells         []Cost
}
