// Package gridpath plans routes over cost-weighted grids: A* for the
// cell-by-cell path, then string pulling for a short list of waypoints with
// clear line of sight between them.
//
// What is in the box?
//
//	gridgraph/     the cost grid: storage, bounds, text maps, regions, rendering
//	bresenham/     integer line rasterization for all eight octants
//	los/           line-of-sight predicate with a diagonal corner safeguard
//	astar/         A* search, 4-connected, Manhattan heuristic
//	waypoint/      path reduction by string pulling
//	dijkstra/      full distance field from one source, same cost model as astar
//	cmd/gridpath/  command-line planner with an optional terminal viewer
//
// Cost model:
//
//   - Every cell holds a uint8 cost. 255 (gridgraph.Impassable) is a wall.
//   - Entering a cell costs 1 + its cost. The start cell is not charged.
//   - Moves are right, down, left and up; never diagonal.
//
// Quick example:
//
//	g, _ := gridgraph.ParseMap(strings.NewReader("...#..\n...#..\n......\n"))
//	route, err := gridpath.Plan(g, gridgraph.Pt(0, 0), gridgraph.Pt(5, 0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(route.Waypoints) // [(0,0) (2,2) (5,2) (5,0)]
//
// A missing route is not an error: check Route.Found.
//
// All packages are synchronous and lock-free. A grid may be shared by
// concurrent searches as long as nobody calls SetCost at the same time.
package gridpath
