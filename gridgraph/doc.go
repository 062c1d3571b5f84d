// Package gridgraph stores a rectangular, cost-weighted grid of cells and
// exposes it as the search space for the path-finding packages of gridpath.
//
// What:
//
//   - Grid holds one Cost (uint8) per cell, row-major, fixed size after construction.
//   - Impassable (255) is the sentinel for cells that can never be entered.
//   - Regions finds 4-connected areas of cells cheaper than a threshold.
//   - ParseMap reads the plain-text map format used by the CLI and tests.
//   - String renders costs as colored hex, Format renders ASCII with overlays.
//
// Why:
//
//   - Game maps: terrain weights, walls, fog of war.
//   - Robotics: occupancy grids with traversal penalties.
//
// Complexity:
//
//   - InBounds, Cost, SetCost: O(1).
//   - Regions, Connected:      O(W×H), Memory: O(W×H).
//   - ParseMap, String:        O(W×H).
//
// Errors:
//
//   - ErrNegativeSize:   New called with a negative width or height.
//   - ErrEmptyGrid:      FromRows / ParseMap got no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    CostAt / SetCost addressed a cell outside the grid.
//   - ErrBadSymbol:      ParseMap met a character outside the map alphabet.
//
// Concurrency:
//
//   - A Grid has no internal locking. Concurrent readers are safe as long as
//     no SetCost call overlaps them.
package gridgraph
