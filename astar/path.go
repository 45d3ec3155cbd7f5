package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// PathTo reconstructs the route from start to end by walking CameFrom links
// back from end, as left by the last Solve on g. It returns the handles in
// start → end order, [start] when start == end, and nil when end was not
// reached. The walk is bounded by g.Len() steps, so corrupted links cannot
// loop forever.
func PathTo(g *gridgraph.Grid, start, end int) []int {
	if start == end {
		return []int{start}
	}

	path := []int{end}
	for cur := end; cur != start; {
		prev := g.At(cur).Search.CameFrom
		if prev == gridgraph.NoCell || len(path) > g.Len() {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
