// Package astar finds minimal-cost routes between two cells of a
// gridgraph.Grid with the A* algorithm.
//
// Overview:
//
//   - Moves are 4-connected (right, down, left, up).
//   - Entering a cell costs 1 plus the cell's cost; Impassable cells are walls.
//   - The heuristic is the Manhattan distance, which never overestimates
//     under this cost model, so returned paths are optimal.
//   - "No path" is an ordinary outcome reported by Result.Found, not an error.
//
// When to use:
//
//   - Point-to-point routing on tile maps and occupancy grids.
//   - As the first stage of waypoint.Reduce, which turns the cell-by-cell
//     path into a short list of mutually visible waypoints.
//   - For many queries from one source, dijkstra.Distances computes the
//     whole distance field in one pass instead.
//
// API reference:
//
//	func Search(
//	    g *gridgraph.Grid,
//	    start, goal gridgraph.Point,
//	    opts ...Option,
//	) (Result, error)
//
//	  - opts:
//	      • WithLegacyOpenSet():  keep the first score of an open node (compatibility).
//	      • WithMaxExpansions(n): give up after n pops.
//	      • WithOnPush(fn), WithOnExpand(fn): observation hooks.
//	  - Result.Path:     start → goal inclusive, nil if not found.
//	  - Result.Cost:     total cost of the path.
//	  - Result.Expanded: nodes popped from the open set.
//
// Tie-breaking:
//
//   - The heap has no secondary key. When several paths share the minimal
//     cost, which one is returned depends on heap order and neighbor order.
//     It is deterministic for a given grid but not canonical.
//
// Thread safety:
//
//   - Each Search owns its arena, heap and sets. Searches may run
//     concurrently on one grid as long as nobody calls SetCost meanwhile.
package astar
