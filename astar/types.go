// Package astar defines configuration options, results and sentinel errors
// for A* search over a gridgraph.Grid.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Solve. Absence of a path is not an error.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCellOutOfRange indicates that the start or end handle does not
	// address a cell of the grid.
	ErrCellOutOfRange = errors.New("astar: cell handle out of range")
)

// Heuristic estimates the remaining cost between two cells.
// It must be admissible and consistent for Solve to return optimal costs.
type Heuristic func(a, b *gridgraph.Cell) float64

// Euclidean is the straight-line distance between two cells.
// It serves both as the edge cost between neighbours and as the default heuristic.
func Euclidean(a, b *gridgraph.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Options configures Solve.
//
// Heuristic – remaining-cost estimate; Euclidean by default.
// OnVisit   – called with the handle of every cell as it is finalized.
// OnRelax   – called after each successful relaxation from → to.
type Options struct {
	Heuristic Heuristic
	OnVisit   func(idx int)
	OnRelax   func(from, to int)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit registers a callback run each time a cell is marked visited.
func WithOnVisit(fn func(idx int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run each time a cheaper route to a
// neighbour is recorded.
func WithOnRelax(fn func(from, to int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with the Euclidean heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnVisit:   func(int) {},
		OnRelax:   func(int, int) {},
	}
}

// Result summarizes a Solve run. Per-cell visited flags, costs and
// came-from links stay readable on the grid itself.
//
//   - Found:    the end cell has a finite cost (a route exists).
//   - Cost:     cost of the route to the end cell, +Inf when not found.
//   - Expanded: number of cells marked visited.
//   - Path:     handles from start to end inclusive; nil when not found.
type Result struct {
	Found    bool
	Cost     float64
	Expanded int
	Path     []int
}
