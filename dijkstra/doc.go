// Package dijkstra computes single-source distance fields over a
// gridgraph.Grid with Dijkstra's algorithm.
//
// Overview:
//
//   - The cost model is the one astar.Search uses: a 4-connected step into a
//     cell costs 1 + the cell's cost, the source is never charged, and cells
//     at or above the wall threshold are never entered.
//   - One run yields the exact distance from the source to every cell, so
//     it answers many "how far / which way" queries at once and serves as
//     the optimality reference for A*.
//
// When to use:
//
//   - Flood-style queries: reachable area within a budget, distance maps
//     for AI influence, or routing many units towards one target.
//   - Verifying heuristic searches on small grids.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = W×H.
//   - Space: O(N) for the distance and predecessor slices, plus O(N) heap
//     entries under the lazy decrease-key strategy.
//
// API reference:
//
//	func Distances(g *gridgraph.Grid, source gridgraph.Point, opts ...Option) (*Field, error)
//
//	  - opts: WithMaxDistance(int64), WithThreshold(gridgraph.Cost).
//	  - Field.Distance(p): distance and whether p was reached.
//	  - Field.PathTo(p):   one shortest path source → p, or ErrUnreachable.
//
// Thread safety:
//
//   - Distances only reads the grid. Do not call SetCost concurrently.
//   - A Field is immutable once returned and safe to share.
package dijkstra
