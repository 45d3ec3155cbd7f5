// Package gridgraph treats a fixed-size 2D grid of cells as a graph with
// static 4-neighbour adjacency and toggleable obstacles.
//
// What:
//
//   - Grid owns Width×Height cells in a dense row-major slice.
//   - Every cell links to its in-bounds orthogonal neighbours (N, S, W, E).
//     Links are arena indices into the grid, never pointers, and are built
//     exactly once at construction.
//   - Obstacle flags are mutable; adjacency is purely geometric and does not
//     change when a cell becomes impassable. Searches enforce obstacles.
//   - Each cell carries a SearchState scratch group that search engines reset
//     and fill on every run (visited flag, costs, came-from link).
//   - Identifies connected regions of passable cells.
//
// Why:
//
//   - Game maps and editors: toggle walls and recompute routes on every edit.
//   - Reachability checks before or after a search.
//
// Complexity:
//
//   - New:                 O(W×H), Memory: O(W×H).
//   - ToggleObstacle, Cell: O(1).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - Reachable:           O(W×H×4), Memory: O(W×H).
//
// Preconditions:
//
//   - Coordinates passed to Cell, ToggleObstacle and SetObstacle must satisfy
//     InBounds. Out-of-range access is a programming error and panics.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
package gridgraph
