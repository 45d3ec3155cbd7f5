// Package navigator keeps a grid together with its start and end cells and
// re-runs A* after every edit, so the latest route is always available to a
// front end.
//
// A Navigator is not safe for concurrent use; edits and reads are expected
// to come from a single event loop.
package navigator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrPointOutOfRange indicates a coordinate outside the grid.
	ErrPointOutOfRange = errors.New("navigator: point out of range")

	// ErrBadConfig indicates a config document that could not be decoded.
	ErrBadConfig = errors.New("navigator: malformed config")
)

// Navigator owns a grid and the identities of its start and end cells.
type Navigator struct {
	grid   *gridgraph.Grid
	start  int
	end    int
	result astar.Result
	opts   []astar.Option
}

// New builds a Navigator from DefaultConfig adjusted by opts and runs the
// first search.
func New(opts ...Option) (*Navigator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return NewFromConfig(cfg)
}

// NewFromConfig builds a Navigator for cfg and runs the first search.
// Extra search options are applied to every solve.
func NewFromConfig(cfg Config, searchOpts ...astar.Option) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := gridgraph.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	start, end := cfg.Endpoints()
	n := &Navigator{
		grid:  g,
		start: g.Index(start.X, start.Y),
		end:   g.Index(end.X, end.Y),
		opts:  searchOpts,
	}
	if err := n.Solve(); err != nil {
		return nil, err
	}

	return n, nil
}

// Solve re-runs the search from the current start to the current end.
func (n *Navigator) Solve() error {
	res, err := astar.Solve(n.grid, n.start, n.end, n.opts...)
	if err != nil {
		return fmt.Errorf("navigator: solve: %w", err)
	}
	n.result = res

	return nil
}

// ToggleObstacle flips the obstacle at (x,y) and re-solves.
func (n *Navigator) ToggleObstacle(x, y int) error {
	if err := n.check(x, y); err != nil {
		return err
	}
	n.grid.ToggleObstacle(x, y)

	return n.Solve()
}

// SetStart moves the start cell to (x,y) and re-solves.
func (n *Navigator) SetStart(x, y int) error {
	if err := n.check(x, y); err != nil {
		return err
	}
	n.start = n.grid.Index(x, y)

	return n.Solve()
}

// SetEnd moves the end cell to (x,y) and re-solves.
func (n *Navigator) SetEnd(x, y int) error {
	if err := n.check(x, y); err != nil {
		return err
	}
	n.end = n.grid.Index(x, y)

	return n.Solve()
}

// ClearObstacles makes every cell passable and re-solves.
func (n *Navigator) ClearObstacles() error {
	n.grid.ClearObstacles()

	return n.Solve()
}

// Grid exposes the underlying grid for rendering. Callers must not edit it
// directly; use the Navigator methods so the route stays current.
func (n *Navigator) Grid() *gridgraph.Grid { return n.grid }

// Start returns the start coordinate.
func (n *Navigator) Start() Point { return n.point(n.start) }

// End returns the end coordinate.
func (n *Navigator) End() Point { return n.point(n.end) }

// Result returns the summary of the last search.
func (n *Navigator) Result() astar.Result { return n.result }

// Path returns the last route as coordinates from start to end, or nil.
func (n *Navigator) Path() []Point {
	if !n.result.Found {
		return nil
	}
	out := make([]Point, len(n.result.Path))
	for i, idx := range n.result.Path {
		out[i] = n.point(idx)
	}

	return out
}

func (n *Navigator) point(idx int) Point {
	x, y := n.grid.Coordinate(idx)

	return Point{X: x, Y: y}
}

func (n *Navigator) check(x, y int) error {
	if !n.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d", ErrPointOutOfRange, x, y, n.grid.Width(), n.grid.Height())
	}

	return nil
}
