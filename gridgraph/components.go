package gridgraph

// Regions finds all 4-connected areas of cells whose cost is strictly below
// threshold. Pass Impassable to group every enterable cell.
// Returns a slice of regions; each region is a slice of cell-indices
// (row-major) in BFS discovery order. Regions are ordered by the row-major
// index of their first cell.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(threshold Cost) [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0, c := range g.cells {
		if c >= threshold || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Offsets4 {
				v := Point{X: u.X + d.X, Y: u.Y + d.Y}
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if seen[vi] || g.cells[vi] >= threshold {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a and b lie in the same 4-connected region of
// cells cheaper than threshold. Both endpoints must themselves qualify.
// The flood fill stops as soon as b is reached.
//
// Time:   O(W·H) worst case.
// Memory: O(W·H).
func (g *Grid) Connected(a, b Point, threshold Cost) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if g.Cost(a) >= threshold || g.Cost(b) >= threshold {
		return false
	}
	if a == b {
		return true
	}
	target := g.Index(b)
	seen := make([]bool, len(g.cells))
	queue := []int{g.Index(a)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range Offsets4 {
			v := Point{X: u.X + d.X, Y: u.Y + d.Y}
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] || g.cells[vi] >= threshold {
				continue
			}
			if vi == target {
				return true
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false
}
