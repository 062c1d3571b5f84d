// Package dijkstra defines configuration options and sentinel errors for
// the grid distance field.
//
// Options:
//
//	– WithMaxDistance: optional cap on distances to explore; cells beyond it stay unreachable.
//	– WithThreshold:   cells with cost >= this threshold are treated as walls.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source point lies outside the grid.
//	– ErrOptionViolation   if MaxDistance < 0 or Threshold == 0.
//	– ErrUnreachable       from Field.PathTo when the target was never reached.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the distance field.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Distances.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source point lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable indicates that no path from the source reaches the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options configures Distances.
//
// MaxDistance – cells whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Threshold – cells with cost ≥ Threshold are never entered.
//
//	Must be > 0. Default is gridgraph.Impassable.
type Options struct {
	MaxDistance int64
	Threshold   gridgraph.Cost

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - MaxDistance: math.MaxInt64 (explore all reachable cells).
//   - Threshold:   gridgraph.Impassable (only walls block).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Threshold:   gridgraph.Impassable,
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded as ErrOptionViolation and returned by Distances.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithThreshold treats every cell with cost ≥ threshold as a wall.
// Zero would make every cell a wall and is recorded as ErrOptionViolation.
func WithThreshold(threshold gridgraph.Cost) Option {
	return func(o *Options) {
		if threshold == 0 {
			o.err = fmt.Errorf("%w: Threshold must be positive", ErrOptionViolation)
			return
		}
		o.Threshold = threshold
	}
}
