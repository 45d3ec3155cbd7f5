// Package astar implements goal-directed best-first search (A*) on a
// gridgraph.Grid with orthogonal moves and obstacle cells.
//
// Solve writes its results into each cell's SearchState: Visited marks
// finalized cells, LocalCost holds the best cost from the start, and CameFrom
// links every reached cell to its predecessor on the shortest-path tree.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell is finalized at most once
//     and each of its at most 4 neighbours triggers one heap fix.
//   - Space: O(V) for the worklist.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Solve runs A* on g from the start cell to the end cell, both given as
// handles (see gridgraph.Grid.Index).
//
// Every cell's SearchState is reset first, so Solve is safe to call
// repeatedly; two consecutive calls without intervening edits produce
// identical state. When no route exists Solve still succeeds: the end cell
// keeps CameFrom == gridgraph.NoCell and Result.Found is false.
//
// The start cell is expanded even if it is an obstacle. An obstacle end cell
// is never reached.
//
// Returns ErrNilGrid or ErrCellOutOfRange for invalid input.
func Solve(g *gridgraph.Grid, start, end int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if start < 0 || start >= g.Len() {
		return Result{}, fmt.Errorf("%w: start=%d, cells=%d", ErrCellOutOfRange, start, g.Len())
	}
	if end < 0 || end >= g.Len() {
		return Result{}, fmt.Errorf("%w: end=%d, cells=%d", ErrCellOutOfRange, end, g.Len())
	}

	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		open:    newWorklist(g.Len()),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *gridgraph.Grid
	options  Options
	start    int
	end      int
	open     *worklist
	expanded int
}

// init resets all cells and seeds the worklist with the start cell.
func (r *runner) init() {
	r.g.ResetSearch()

	s := r.g.At(r.start)
	s.Search.LocalCost = 0
	s.Search.TotalEstimate = r.options.Heuristic(s, r.g.At(r.end))
	r.open.push(r.start, s.Search.TotalEstimate)
}

// process selects the cheapest unvisited candidate until the end cell has
// been selected or the worklist runs dry.
func (r *runner) process() {
	current := r.start
	for r.open.Len() > 0 && current != r.end {
		// Drop stale entries of already finalized cells.
		for r.open.Len() > 0 && r.g.At(r.open.items[0].idx).Search.Visited {
			r.open.pop()
		}
		if r.open.Len() == 0 {
			break
		}

		current = r.open.pop()
		r.g.At(current).Search.Visited = true
		r.expanded++
		r.options.OnVisit(current)

		r.relax(current)
	}
}

// relax enqueues every passable, unvisited neighbour of u and records a
// cheaper route through u where one exists.
func (r *runner) relax(u int) {
	cu := r.g.At(u)
	goal := r.g.At(r.end)
	for _, v := range cu.Neighbours() {
		cv := r.g.At(v)
		if cv.Obstacle || cv.Search.Visited {
			continue
		}
		r.open.push(v, cv.Search.TotalEstimate)

		candidate := cu.Search.LocalCost + Euclidean(cu, cv)
		if candidate >= cv.Search.LocalCost {
			continue
		}
		cv.Search.CameFrom = u
		cv.Search.LocalCost = candidate
		cv.Search.TotalEstimate = candidate + r.options.Heuristic(cv, goal)
		r.open.update(v, cv.Search.TotalEstimate)
		r.options.OnRelax(u, v)
	}
}

// result summarizes the finished search.
func (r *runner) result() Result {
	res := Result{
		Cost:     r.g.At(r.end).Search.LocalCost,
		Expanded: r.expanded,
	}
	res.Found = !math.IsInf(res.Cost, 1)
	if res.Found {
		res.Path = PathTo(r.g, r.start, r.end)
	}

	return res
}
