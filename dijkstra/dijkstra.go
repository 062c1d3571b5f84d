// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// cells of a gridgraph.Grid.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are flat slices indexed by the grid's
//     row-major cell index; no per-cell maps.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their cell is finalized.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// unreached marks a cell with no known distance.
const unreached = math.MaxInt64

// Field is the result of Distances: the minimal cost from Source to every
// reached cell, with one predecessor per cell for path recovery.
type Field struct {
	grid   *gridgraph.Grid
	source gridgraph.Point
	dist   []int64
	prev   []int32 // predecessor cell index, -1 for the source or unreached cells
}

// Distances computes the distance field from source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. options must be valid (ErrOptionViolation).
//  3. source must lie inside g (ErrSourceOutOfBounds).
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Distances(g *gridgraph.Grid, source gridgraph.Point, opts ...Option) (*Field, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source lies inside the grid
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source)
	}

	// 4) Prepare data structures for the algorithm.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		field: &Field{
			grid:   g,
			source: source,
			dist:   make([]int64, n),
			prev:   make([]int32, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.field, nil
}

// Source returns the point the field was computed from.
func (f *Field) Source() gridgraph.Point { return f.source }

// Distance returns the minimal cost from Source to p and true, or 0 and
// false when p is out of bounds or was not reached.
func (f *Field) Distance(p gridgraph.Point) (int64, bool) {
	if !f.grid.InBounds(p) {
		return 0, false
	}
	d := f.dist[f.grid.Index(p)]
	if d == unreached {
		return 0, false
	}

	return d, true
}

// Reached returns the number of cells with a finite distance.
func (f *Field) Reached() int {
	count := 0
	for _, d := range f.dist {
		if d != unreached {
			count++
		}
	}

	return count
}

// PathTo reconstructs one shortest path from Source to dest inclusive.
// Returns ErrUnreachable if dest was not reached.
func (f *Field) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	if _, ok := f.Distance(dest); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	var path []gridgraph.Point
	for at := int32(f.grid.Index(dest)); at >= 0; at = f.prev[at] {
		path = append(path, f.grid.Coordinate(int(at)))
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only.
	options Options         // Configuration options.
	field   *Field          // Distances and predecessors being built.
	visited []bool          // Tracks if a cell's distance is finalized.
	pq      nodePQ          // Min-heap of nodeItem for lazy priority queue.
}

// init sets every distance to +∞, then pushes the source at distance 0.
func (r *runner) init() {
	for i := range r.field.dist {
		r.field.dist[i] = unreached
		r.field.prev[i] = -1
	}
	src := r.g.Index(r.field.source)
	r.field.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unfinished cell and relaxes its
// neighbors, until the heap drains or the closest distance exceeds
// MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		// Skip stale heap entries.
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx, item.dist)
	}
}

// relax tries to improve the distance of each neighbor of cell u.
func (r *runner) relax(u int, du int64) {
	p := r.g.Coordinate(u)
	for _, d := range gridgraph.Offsets4 {
		q := gridgraph.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if !r.g.InBounds(q) {
			continue
		}
		c := r.g.Cost(q)
		if c >= r.options.Threshold {
			continue
		}
		v := r.g.Index(q)
		nd := du + 1 + int64(c)
		if nd > r.options.MaxDistance || nd >= r.field.dist[v] {
			continue
		}
		r.field.dist[v] = nd
		r.field.prev[v] = int32(u)
		heap.Push(&r.pq, nodeItem{idx: v, dist: nd})
	}
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	idx  int   // row-major cell index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
