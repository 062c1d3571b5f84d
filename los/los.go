// Package los answers line-of-sight queries on a gridgraph.Grid.
//
// A line is clear when every cell of its Bresenham raster lies inside the
// grid with a cost strictly below the caller's threshold. Diagonal steps
// additionally test both orthogonal corner cells, so a line cannot slip
// between two blocking cells that only touch at a corner.
//
// Pass gridgraph.Impassable as the threshold to test against walls only, or
// any lower cost to treat expensive terrain as opaque as well.
package los

import (
	"github.com/katalvlaran/gridpath/bresenham"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// HasLineOfSight reports whether the straight raster from start to end stays
// in bounds and below threshold everywhere, including the corner cells of
// every diagonal step. Corner cells outside the grid are ignored; raster
// cells outside the grid block the line.
//
// Visibility is monotonic in threshold: raising it never blocks a clear line.
// Complexity: O(max(|dx|,|dy|)), no allocation.
func HasLineOfSight(g *gridgraph.Grid, start, end gridgraph.Point, threshold gridgraph.Cost) bool {
	prev := start
	first := true

	return bresenham.Walk(start.X, start.Y, end.X, end.Y, func(x, y int) bool {
		cur := gridgraph.Point{X: x, Y: y}
		if !g.InBounds(cur) || g.Cost(cur) >= threshold {
			return false
		}
		if !first && cur.X != prev.X && cur.Y != prev.Y {
			if blocks(g, gridgraph.Point{X: prev.X, Y: cur.Y}, threshold) ||
				blocks(g, gridgraph.Point{X: cur.X, Y: prev.Y}, threshold) {
				return false
			}
		}
		prev, first = cur, false

		return true
	})
}

// blocks reports whether an in-bounds corner cell is at or above threshold.
func blocks(g *gridgraph.Grid, p gridgraph.Point, threshold gridgraph.Cost) bool {
	return g.InBounds(p) && g.Cost(p) >= threshold
}
