// Package gridgraph defines the cell and grid types and their field groups.
package gridgraph

import "math"

const (
	// DefaultWidth is the grid width used when none is configured.
	DefaultWidth = 16
	// DefaultHeight is the grid height used when none is configured.
	DefaultHeight = 16

	// NoCell marks an absent cell handle, e.g. a CameFrom link that was never assigned.
	NoCell = -1
)

// SearchState is the transient scratch group of a cell.
// It is fully reinitialized by Reset before every search and
// must not be relied upon across searches.
type SearchState struct {
	Visited       bool    // finalized (expanded) by the last search
	LocalCost     float64 // best known cost from the start cell
	TotalEstimate float64 // LocalCost + heuristic to the end cell
	CameFrom      int     // predecessor handle on the best known route, or NoCell
}

// Reset restores the state a cell has before any search touched it.
func (s *SearchState) Reset() {
	s.Visited = false
	s.LocalCost = math.Inf(1)
	s.TotalEstimate = math.Inf(1)
	s.CameFrom = NoCell
}

// Cell is a single grid position.
//
// X, Y and the neighbour handles are fixed at construction. Obstacle is the
// only static field that changes afterwards. Search holds per-search scratch.
type Cell struct {
	X, Y     int  // coordinates within the grid
	Obstacle bool // impassable when true

	Search SearchState

	neighbours []int // handles of orthogonally adjacent cells
}

// Neighbours returns the handles of the orthogonally adjacent cells.
// The returned slice is shared and must not be modified.
func (c *Cell) Neighbours() []int {
	return c.neighbours
}

// Grid is a fixed Width×Height arrangement of cells addressed by
// row-major handles (y*Width + x).
type Grid struct {
	width, height int
	cells         []Cell
}

// conn4 lists orthogonal offsets in the order neighbours are linked:
// up, down, left, right.
var conn4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
