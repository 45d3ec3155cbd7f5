// Package gridpath is a small toolkit for shortest paths on editable 2D grids.
// Walls go up and come down, and the route follows.
//
// 🚀 What is inside?
//
//	• gridgraph/      fixed-size grid of cells, static 4-neighbour mesh, obstacle flags
//	• astar/          A* search with a Euclidean heuristic and deterministic tie-breaks
//	• navigator/      grid + start/end session that re-solves after every edit, YAML config
//	• internal/tui/   terminal front end (tcell) drawing the mesh, visited cells and route
//	• cmd/gridpath/   the interactive playground
//
// Quick ASCII example (S start, E end, # wall, * route):
//
//	S * # . .
//	. * # * E
//	. * * * .
//
// The search writes its findings into every cell: a visited flag, the cost
// from the start, and a came-from link, so a front end can draw both the
// explored area and the route by walking links back from E.
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath -width 24 -height 12
package gridpath
