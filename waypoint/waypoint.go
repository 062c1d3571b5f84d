// Package waypoint shortens cell-by-cell grid paths into waypoint lists by
// string pulling: intermediate cells are dropped for as long as the last
// kept waypoint still has line of sight to the path ahead.
//
// Visibility is tested with los.HasLineOfSight against gridgraph.Impassable,
// so only walls break a straight segment; expensive terrain does not.
//
// Guarantees for a non-empty input path:
//
//   - the first and last waypoints are the first and last path points;
//   - every consecutive pair of waypoints has line of sight;
//   - the output is a subsequence of the input.
//
// Reduce is idempotent. Pull is the single greedy pass it is built on.
package waypoint

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/los"
)

// Pull makes one greedy pass over path and returns the waypoints it keeps.
//
// The scan holds the last committed waypoint and the furthest path point
// visible from it. When visibility to the next point breaks, the furthest
// visible point is committed and the scan continues from there. If even the
// immediate successor is not visible, as when the path starts on a wall, the
// successor itself is committed so the scan always advances.
//
// An empty path yields nil; a single point yields a one-element copy.
// The input slice is never modified.
func Pull(g *gridgraph.Grid, path []gridgraph.Point) []gridgraph.Point {
	switch len(path) {
	case 0:
		return nil
	case 1:
		return []gridgraph.Point{path[0]}
	}

	out := []gridgraph.Point{path[0]}
	inserted, visible := 0, 0
	for i := 1; i < len(path); i++ {
		if los.HasLineOfSight(g, path[inserted], path[i], gridgraph.Impassable) {
			visible = i
			continue
		}
		if visible == inserted {
			visible = i
		}
		out = append(out, path[visible])
		inserted, visible = visible, i
	}
	if inserted != len(path)-1 {
		out = append(out, path[len(path)-1])
	}

	return out
}

// Reduce repeats Pull until the waypoint list stops shrinking. A pass that
// changes its input always returns a strictly shorter subsequence, so the
// loop ends, and its result is a fixed point: Reduce(g, Reduce(g, p)) equals
// Reduce(g, p).
func Reduce(g *gridgraph.Grid, path []gridgraph.Point) []gridgraph.Point {
	out := Pull(g, path)
	for len(out) > 2 {
		next := Pull(g, out)
		if len(next) >= len(out) {
			break
		}
		out = next
	}

	return out
}
