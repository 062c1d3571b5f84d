// Package bresenham rasterizes straight segments between integer grid
// coordinates with the Bresenham algorithm.
//
// The raster steps exactly one cell along the dominant axis per step and
// advances the minor axis when the accumulated error crosses the midpoint.
// Ties are broken by the direction of travel along the dominant axis, so a
// segment traced backwards visits exactly the same cells in reverse order.
//
// Complexity: O(max(|dx|,|dy|)) per segment.
package bresenham

// Stepper walks a raster line one cell at a time without allocating.
// The zero value is not usable; call Reset first.
type Stepper struct {
	x, y       int
	sMajor     int // ±1 along the dominant axis
	sMinor     int // ±1 along the minor axis
	dMajor     int // |delta| on the dominant axis
	dMinor     int // |delta| on the minor axis
	err        int // doubled error, reset each time the minor axis advances
	steep      bool
	strict     bool // tie rule: true when the dominant axis increases
	remaining  int
	hasCurrent bool
}

// Reset prepares s to walk from (x0,y0) to (x1,y1) inclusive.
// It returns the number of cells the walk will produce.
func (s *Stepper) Reset(x0, y0, x1, y1 int) int {
	dx, sx := delta(x0, x1)
	dy, sy := delta(y0, y1)

	s.x, s.y = x0, y0
	s.steep = dy > dx
	if s.steep {
		s.dMajor, s.dMinor, s.sMajor, s.sMinor = dy, dx, sy, sx
	} else {
		s.dMajor, s.dMinor, s.sMajor, s.sMinor = dx, dy, sx, sy
	}
	s.strict = s.sMajor > 0
	s.err = 0
	s.remaining = s.dMajor
	s.hasCurrent = true

	return s.dMajor + 1
}

// Next returns the next cell of the line and true, or false once the end
// point has been returned.
func (s *Stepper) Next() (x, y int, ok bool) {
	if s.hasCurrent {
		s.hasCurrent = false
		return s.x, s.y, true
	}
	if s.remaining == 0 {
		return 0, 0, false
	}
	s.remaining--

	s.err += 2 * s.dMinor
	advance := s.err > s.dMajor
	if !s.strict {
		advance = s.err >= s.dMajor
	}
	if s.steep {
		s.y += s.sMajor
		if advance {
			s.x += s.sMinor
		}
	} else {
		s.x += s.sMajor
		if advance {
			s.y += s.sMinor
		}
	}
	if advance {
		s.err -= 2 * s.dMajor
	}

	return s.x, s.y, true
}

// Walk calls fn for every cell from (x0,y0) to (x1,y1) inclusive, in
// traversal order. It stops early when fn returns false and reports whether
// the walk reached the end point.
func Walk(x0, y0, x1, y1 int, fn func(x, y int) bool) bool {
	var s Stepper
	s.Reset(x0, y0, x1, y1)
	for {
		x, y, ok := s.Next()
		if !ok {
			return true
		}
		if !fn(x, y) {
			return false
		}
	}
}

// Line returns every cell from (x0,y0) to (x1,y1) inclusive as {x, y}
// pairs. The result always holds at least the start cell.
func Line(x0, y0, x1, y1 int) [][2]int {
	var s Stepper
	cells := make([][2]int, 0, s.Reset(x0, y0, x1, y1))
	for {
		x, y, ok := s.Next()
		if !ok {
			return cells
		}
		cells = append(cells, [2]int{x, y})
	}
}

// delta returns |b-a| and the unit step from a towards b (1 when equal).
func delta(a, b int) (int, int) {
	if b < a {
		return a - b, -1
	}

	return b - a, 1
}
