package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// orthogonal connectivity. Returns a slice of components; each component is
// a slice of cell handles in BFS order from its lowest handle.
//
// To convert a handle back to (x,y), use Coordinate.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i := range g.cells {
		if g.cells[i].Obstacle || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}

	return comps
}

// Reachable returns the handles of every passable cell reachable from idx
// without crossing an obstacle, in BFS order. The start cell is always
// included, even when it is itself an obstacle, since a search may be seeded
// there.
// Panics if idx is out of range.
func (g *Grid) Reachable(idx int) []int {
	g.At(idx)
	seen := make([]bool, len(g.cells))

	return g.flood(idx, seen)
}

// flood collects the region around i0 and marks it in seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.cells[u].neighbours {
			if seen[v] || g.cells[v].Obstacle {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
