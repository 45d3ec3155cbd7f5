package gridgraph

import (
	"fmt"
)

// New allocates a width×height grid and links every cell to its in-bounds
// orthogonal neighbours. All cells start passable with a reset SearchState.
// Returns ErrInvalidDimensions if either dimension is not positive; no
// partial grid is returned in that case.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[g.Index(x, y)]
			c.X, c.Y = x, y
			c.Search.Reset()
		}
	}
	g.buildAdjacency()

	return g, nil
}

// buildAdjacency links each cell to its in-bounds orthogonal neighbours.
// Called exactly once from New; links are symmetric and never change.
func (g *Grid) buildAdjacency() {
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbours = make([]int, 0, len(conn4))
		for _, d := range conn4 {
			nx, ny := c.X+d[0], c.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			c.neighbours = append(c.neighbours, g.Index(nx, ny))
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major handle: y*Width + x.
// The result is meaningful only when InBounds(x, y).
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major handle back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Cell returns the cell at (x,y). It panics if (x,y) is out of range.
func (g *Grid) Cell(x, y int) *Cell {
	g.mustInBounds(x, y)

	return &g.cells[g.Index(x, y)]
}

// At returns the cell with the given handle. It panics if idx is out of range.
func (g *Grid) At(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		panic(fmt.Sprintf("gridgraph: cell handle %d out of range [0,%d)", idx, len(g.cells)))
	}

	return &g.cells[idx]
}

// Neighbours returns the handles adjacent to idx, in up, down, left, right order.
// The returned slice is shared and must not be modified.
func (g *Grid) Neighbours(idx int) []int {
	return g.At(idx).neighbours
}

// ToggleObstacle flips the obstacle flag of the cell at (x,y).
// Adjacency is left untouched. It panics if (x,y) is out of range.
func (g *Grid) ToggleObstacle(x, y int) {
	c := g.Cell(x, y)
	c.Obstacle = !c.Obstacle
}

// SetObstacle sets the obstacle flag of the cell at (x,y).
// It panics if (x,y) is out of range.
func (g *Grid) SetObstacle(x, y int, obstacle bool) {
	g.Cell(x, y).Obstacle = obstacle
}

// Obstacles returns the handles of all impassable cells in row-major order.
func (g *Grid) Obstacles() []int {
	var out []int
	for i := range g.cells {
		if g.cells[i].Obstacle {
			out = append(out, i)
		}
	}

	return out
}

// ClearObstacles makes every cell passable.
func (g *Grid) ClearObstacles() {
	for i := range g.cells {
		g.cells[i].Obstacle = false
	}
}

// ResetSearch reinitializes the SearchState of every cell.
// Complexity: O(W×H).
func (g *Grid) ResetSearch() {
	for i := range g.cells {
		g.cells[i].Search.Reset()
	}
}

func (g *Grid) mustInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("gridgraph: coordinate (%d,%d) out of range %d×%d", x, y, g.width, g.height))
	}
}
