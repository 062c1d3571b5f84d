// Package astar defines the options, results and sentinel errors of the
// grid A* search.
//
// Options:
//
//	– WithLegacyOpenSet(): never improve an entry that is already open.
//	– WithMaxExpansions(n): give up after n nodes have been expanded (0 = no cap).
//	– WithOnPush(fn):      observe every open-set insertion or update.
//	– WithOnExpand(fn):    observe every node moved to the closed set.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrStartOutOfBounds if start lies outside the grid.
//	– ErrGoalOutOfBounds  if goal lies outside the grid.
//	– ErrOptionViolation  if an option was given an invalid value.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Score is an accumulated path cost (g) or a priority key (f = g + h).
// It is 32 bits wide so that long routes over expensive terrain cannot wrap.
type Score uint32

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start point is outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrGoalOutOfBounds indicates that the goal point is outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures Search.
//
// LegacyOpenSet – when true, a neighbor that is already open keeps its first
//
//	score even if a strictly cheaper route to it is found later. This
//	reproduces the behaviour of earlier releases and may return
//	suboptimal paths.
//
// MaxExpansions – stop after this many nodes were expanded; 0 disables the cap.
// OnPush        – called with the point and f-score of each open-set insertion or update.
// OnExpand      – called with the point and g-score of each node moved to the closed set.
type Options struct {
	LegacyOpenSet bool
	MaxExpansions int
	OnPush        func(p gridgraph.Point, f Score)
	OnExpand      func(p gridgraph.Point, g Score)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options with:
//   - LegacyOpenSet: false (better routes to open nodes are applied).
//   - MaxExpansions: 0 (no cap).
//   - no-op OnPush and OnExpand hooks.
func DefaultOptions() Options {
	return Options{
		LegacyOpenSet: false,
		MaxExpansions: 0,
		OnPush:        func(gridgraph.Point, Score) {},
		OnExpand:      func(gridgraph.Point, Score) {},
	}
}

// WithLegacyOpenSet keeps the first score recorded for an open neighbor.
// Use it only when byte-for-byte parity with earlier results matters.
func WithLegacyOpenSet() Option {
	return func(o *Options) {
		o.LegacyOpenSet = true
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0: at most n expansions, then Search reports no path
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback run on every open-set insertion or update.
func WithOnPush(fn func(p gridgraph.Point, f Score)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback run when a node is closed.
func WithOnExpand(fn func(p gridgraph.Point, g Score)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: cells from start to goal inclusive, 4-connected; nil if not Found.
//   - Cost: g-score of the goal (sum of 1 + cost of every entered cell).
//   - Expanded: number of nodes popped from the open set, the goal included.
//   - Found: false when no route exists; this is not an error.
type Result struct {
	Path     []gridgraph.Point
	Cost     Score
	Expanded int
	Found    bool
}
