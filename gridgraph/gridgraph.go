// Package gridgraph provides the cost grid that the gridpath search,
// visibility and reduction packages read from.
//
// Cells with cost == Impassable are walls; every other value is a caller
// defined terrain weight added on top of the unit step cost by the searches.
package gridgraph

import "fmt"

// New constructs a width×height Grid with every cell set to defaultCost.
// A zero-size grid is valid; every point is then out of bounds.
// Returns ErrNegativeSize if width or height is negative.
// Complexity: O(W×H) time and memory.
func New(width, height int, defaultCost Cost) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	cells := make([]Cost, width*height)
	if defaultCost != 0 {
		for i := range cells {
			cells[i] = defaultCost
		}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice where
// rows[y][x] is the cost of cell (x,y). The input is copied.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]Cost) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([]Cost, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells (Width×Height).
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether 0 <= p.X < Width and 0 <= p.Y < Height.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cost returns the cost of cell p. Callers must check InBounds first;
// an out-of-bounds p panics with an error wrapping ErrOutOfBounds.
// Use CostAt for a checked read.
// Complexity: O(1).
func (g *Grid) Cost(p Point) Cost {
	if !g.InBounds(p) {
		panic(g.boundsError(p))
	}

	return g.cells[g.Index(p)]
}

// CostAt returns the cost of cell p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CostAt(p Point) (Cost, error) {
	if !g.InBounds(p) {
		return 0, g.boundsError(p)
	}

	return g.cells[g.Index(p)], nil
}

// SetCost overwrites the cost of cell p. No other cell is touched.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) SetCost(p Point, c Cost) error {
	if !g.InBounds(p) {
		return g.boundsError(p)
	}
	g.cells[g.Index(p)] = c

	return nil
}

// Passable reports whether p is in bounds and not Impassable.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] != Impassable
}

// Index maps p to its row-major index: y*Width + x.
// The result is meaningless when p is out of bounds.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]Cost, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

func (g *Grid) boundsError(p Point) error {
	return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
}
