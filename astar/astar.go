// Package astar implements A* search on a gridgraph.Grid with 4-connected
// moves and the Manhattan-distance heuristic.
//
// Cost model:
//
//   - Entering a cell costs 1 + its grid cost; the start cell is never charged.
//   - Impassable cells are never entered. The start cell is expanded whatever
//     its cost, so a search may begin on a wall but never end on one unless
//     start == goal.
//
// Complexity:
//
//   - Time:  O(N log N) where N = number of cells reached.
//   - Space: O(N) for the node arena, the open map and the closed set.
//
// Notes on implementation choices:
//
//   - Nodes live in an arena and point at their parent by index.
//   - The open set is a container/heap of arena indices keyed by f, plus a
//     position → index map for membership and score lookup.
//   - A strictly better route to an open node updates it in place and
//     re-heapifies with heap.Fix, unless WithLegacyOpenSet is given.
//   - Neighbors are generated right, down, left, up. With no secondary heap
//     key, this order only decides between equal-cost paths.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search finds a minimal-cost 4-connected path from start to goal over g.
//
// Returns:
//
//   - Result{Found: true} with the full path when goal is reachable.
//   - Result{Found: false} with a nil error when it is not, or when
//     MaxExpansions was reached first.
//   - an error only for invalid input: ErrNilGrid, ErrOptionViolation,
//     ErrStartOutOfBounds, ErrGoalOutOfBounds (checked in that order).
//
// Search never writes to g. Concurrent searches on the same grid are safe as
// long as nothing mutates it meanwhile.
func Search(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...Option) (Result, error) {
	// 1) Validate grid
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build options and catch any invalid ones immediately
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 3) Validate endpoints
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}

	// 4) Run
	r := newRunner(g, goal, cfg)
	r.push(start, 0, noParent)

	return r.run(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	grid     *gridgraph.Grid
	goal     gridgraph.Point
	options  Options
	arena    []node
	open     nodeHeap
	openPos  map[gridgraph.Point]int32
	closed   map[gridgraph.Point]struct{}
	expanded int
}

func newRunner(g *gridgraph.Grid, goal gridgraph.Point, cfg Options) *runner {
	r := &runner{
		grid:    g,
		goal:    goal,
		options: cfg,
		arena:   make([]node, 0, 64),
		openPos: make(map[gridgraph.Point]int32),
		closed:  make(map[gridgraph.Point]struct{}),
	}
	r.open.arena = &r.arena
	heap.Init(&r.open)

	return r
}

// run pops the lowest-f node until the goal is popped or the open set
// drains.
func (r *runner) run() Result {
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(int32)
		pos, g := r.arena[cur].pos, r.arena[cur].g
		delete(r.openPos, pos)
		r.expanded++

		if pos == r.goal {
			return Result{
				Path:     r.reconstruct(cur),
				Cost:     g,
				Expanded: r.expanded,
				Found:    true,
			}
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			break
		}

		r.closed[pos] = struct{}{}
		r.options.OnExpand(pos, g)
		r.relax(cur, pos, g)
	}

	return Result{Expanded: r.expanded}
}

// relax scores every enterable neighbor of the node at arena index cur.
func (r *runner) relax(cur int32, pos gridgraph.Point, g Score) {
	var buf [4]gridgraph.Point
	for _, nb := range neighbors(pos, buf[:0]) {
		if !r.grid.InBounds(nb) {
			continue
		}
		if _, done := r.closed[nb]; done {
			continue
		}
		c := r.grid.Cost(nb)
		if c == gridgraph.Impassable {
			continue
		}

		tentative := g + 1 + Score(c)
		if id, ok := r.openPos[nb]; ok {
			// An equal or better route to this neighbor is already open.
			if tentative >= r.arena[id].g {
				continue
			}
			if r.options.LegacyOpenSet {
				continue
			}
			n := &r.arena[id]
			n.g = tentative
			n.f = tentative + heuristic(nb, r.goal)
			n.parent = cur
			heap.Fix(&r.open, n.index)
			r.options.OnPush(nb, n.f)
			continue
		}
		r.push(nb, tentative, cur)
	}
}

// push appends a fresh node to the arena and the open set.
func (r *runner) push(p gridgraph.Point, g Score, parent int32) {
	id := int32(len(r.arena))
	f := g + heuristic(p, r.goal)
	r.arena = append(r.arena, node{pos: p, g: g, f: f, parent: parent})
	heap.Push(&r.open, id)
	r.openPos[p] = id
	r.options.OnPush(p, f)
}

// reconstruct follows parent indices from id back to the start and returns
// the positions in start → goal order. No node references escape.
func (r *runner) reconstruct(id int32) []gridgraph.Point {
	var path []gridgraph.Point
	for at := id; at != noParent; at = r.arena[at].parent {
		path = append(path, r.arena[at].pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// neighbors appends the 4-connected neighbors of p to buf in right, down,
// left, up order. Left and up are only produced for non-zero coordinates;
// right and down may be out of bounds and are filtered by the caller.
func neighbors(p gridgraph.Point, buf []gridgraph.Point) []gridgraph.Point {
	buf = append(buf,
		gridgraph.Point{X: p.X + 1, Y: p.Y},
		gridgraph.Point{X: p.X, Y: p.Y + 1},
	)
	if p.X > 0 {
		buf = append(buf, gridgraph.Point{X: p.X - 1, Y: p.Y})
	}
	if p.Y > 0 {
		buf = append(buf, gridgraph.Point{X: p.X, Y: p.Y - 1})
	}

	return buf
}

// heuristic returns the Manhattan distance between a and b.
func heuristic(a, b gridgraph.Point) Score {
	return Score(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
