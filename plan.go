package gridpath

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/waypoint"
)

// Route is the outcome of Plan.
//
//   - Path:      every cell from start to goal, nil if not Found.
//   - Waypoints: Path reduced by waypoint.Reduce; equal to Path when
//     reduction is disabled, nil if not Found.
//   - Cost:      total cost of Path.
//   - Expanded:  nodes A* expanded before it stopped.
type Route struct {
	Path      []gridgraph.Point
	Waypoints []gridgraph.Point
	Cost      astar.Score
	Expanded  int
	Found     bool
}

// PlanOptions configures Plan.
//
// Reduce - run waypoint.Reduce on the found path (default true).
// Search - options forwarded to astar.Search.
type PlanOptions struct {
	Reduce bool
	Search []astar.Option
}

// PlanOption represents a functional option for configuring Plan.
type PlanOption func(*PlanOptions)

// DefaultPlanOptions returns PlanOptions with reduction on and no search
// options.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{Reduce: true}
}

// WithoutReduce returns the raw A* path as the waypoint list.
func WithoutReduce() PlanOption {
	return func(o *PlanOptions) {
		o.Reduce = false
	}
}

// WithSearch appends options for the underlying astar.Search call.
func WithSearch(opts ...astar.Option) PlanOption {
	return func(o *PlanOptions) {
		o.Search = append(o.Search, opts...)
	}
}

// Plan finds a route from start to goal over g and reduces it to waypoints.
// Errors are those of astar.Search; a missing route is reported through
// Route.Found.
func Plan(g *gridgraph.Grid, start, goal gridgraph.Point, opts ...PlanOption) (Route, error) {
	cfg := DefaultPlanOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := astar.Search(g, start, goal, cfg.Search...)
	if err != nil {
		return Route{}, err
	}

	route := Route{
		Path:     res.Path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Found:    res.Found,
	}
	if !res.Found {
		return route, nil
	}
	if cfg.Reduce {
		route.Waypoints = waypoint.Reduce(g, res.Path)
	} else {
		route.Waypoints = append([]gridgraph.Point(nil), res.Path...)
	}

	return route, nil
}
