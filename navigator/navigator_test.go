package navigator_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/navigator"
)

//----------------------------------------------------------------------------//
// Config Tests
//----------------------------------------------------------------------------//

func TestDefaultConfig(t *testing.T) {
	cfg := navigator.DefaultConfig()
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)

	start, end := cfg.Endpoints()
	assert.Equal(t, navigator.Point{X: 1, Y: 8}, start)
	assert.Equal(t, navigator.Point{X: 14, Y: 8}, end)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		opts []navigator.Option
		err  error
	}{
		{"ZeroWidth", []navigator.Option{navigator.WithSize(0, 4)}, gridgraph.ErrInvalidDimensions},
		{"StartOff", []navigator.Option{navigator.WithStart(-1, 0)}, navigator.ErrPointOutOfRange},
		{"EndOff", []navigator.Option{navigator.WithEnd(16, 0)}, navigator.ErrPointOutOfRange},
		// a 2×2 grid puts the default end at x=0, which is still valid
		{"TinyDefaults", []navigator.Option{navigator.WithSize(2, 2)}, nil},
		// a 1-wide grid has no room for the default endpoints
		{"NarrowDefaults", []navigator.Option{navigator.WithSize(1, 3)}, navigator.ErrPointOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := navigator.New(tc.opts...)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := navigator.ParseConfig([]byte("width: 10\nheight: 6\nend: {x: 7, y: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 6, cfg.Height)

	start, end := cfg.Endpoints()
	assert.Equal(t, navigator.Point{X: 1, Y: 3}, start, "start keeps the default placement for the new size")
	assert.Equal(t, navigator.Point{X: 7, Y: 1}, end)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := navigator.ParseConfig([]byte("width: [1, 2"))
	assert.ErrorIs(t, err, navigator.ErrBadConfig)

	_, err = navigator.ParseConfig([]byte("width: 4\nheight: 4\nstart: {x: 9, y: 0}\n"))
	assert.ErrorIs(t, err, navigator.ErrPointOutOfRange)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 5\nheight: 5\n"), 0o600))

	cfg, err := navigator.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Width)

	_, err = navigator.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

//----------------------------------------------------------------------------//
// Edit Tests
//----------------------------------------------------------------------------//

// TestNavigator_InitialSolve checks the route is ready right after New.
func TestNavigator_InitialSolve(t *testing.T) {
	n, err := navigator.New()
	require.NoError(t, err)

	res := n.Result()
	require.True(t, res.Found)
	assert.Equal(t, 13.0, res.Cost)

	path := n.Path()
	require.Len(t, path, 14)
	assert.Equal(t, n.Start(), path[0])
	assert.Equal(t, n.End(), path[len(path)-1])
	for _, p := range path {
		assert.Equal(t, 8, p.Y)
	}
}

// TestNavigator_Edits exercises every edit and the re-solve that follows it.
func TestNavigator_Edits(t *testing.T) {
	n, err := navigator.New(navigator.WithSize(3, 3), navigator.WithStart(0, 1), navigator.WithEnd(2, 1))
	require.NoError(t, err)
	require.True(t, n.Result().Found)
	assert.Equal(t, 2.0, n.Result().Cost)

	for y := 0; y < 3; y++ {
		require.NoError(t, n.ToggleObstacle(1, y))
	}
	assert.False(t, n.Result().Found)
	assert.Nil(t, n.Path())

	require.NoError(t, n.SetEnd(0, 2))
	assert.True(t, n.Result().Found)
	assert.Equal(t, navigator.Point{X: 0, Y: 2}, n.End())
	assert.Equal(t, 1.0, n.Result().Cost)

	require.NoError(t, n.SetStart(2, 0))
	assert.Equal(t, navigator.Point{X: 2, Y: 0}, n.Start())
	assert.False(t, n.Result().Found)

	require.NoError(t, n.ClearObstacles())
	assert.True(t, n.Result().Found)
	assert.Equal(t, 4.0, n.Result().Cost)
}

// TestNavigator_OutOfRange verifies edits are bounds-checked before they
// reach the grid.
func TestNavigator_OutOfRange(t *testing.T) {
	n, err := navigator.New(navigator.WithSize(4, 4))
	require.NoError(t, err)

	assert.ErrorIs(t, n.ToggleObstacle(4, 0), navigator.ErrPointOutOfRange)
	assert.ErrorIs(t, n.SetStart(0, -1), navigator.ErrPointOutOfRange)
	assert.ErrorIs(t, n.SetEnd(-2, 9), navigator.ErrPointOutOfRange)
	assert.Empty(t, n.Grid().Obstacles())
}

// TestNavigator_SearchOptions checks options are applied on every solve.
func TestNavigator_SearchOptions(t *testing.T) {
	visits := 0
	n, err := navigator.NewFromConfig(navigator.DefaultConfig(),
		astar.WithOnVisit(func(int) { visits++ }))
	require.NoError(t, err)
	first := visits
	assert.Equal(t, n.Result().Expanded, first)

	require.NoError(t, n.ToggleObstacle(0, 0))
	assert.Equal(t, first+n.Result().Expanded, visits)
}
