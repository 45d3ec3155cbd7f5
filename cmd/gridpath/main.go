// Command gridpath is an interactive A* playground in the terminal.
//
// Click a cell to toggle a wall, Shift-click to move the start, Ctrl-click to
// move the end. The keyboard works too: arrows move the cursor, space toggles,
// s and e place the endpoints, c clears all walls and q quits. The route is
// recomputed after every edit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/internal/tui"
	"github.com/katalvlaran/gridpath/navigator"
)

func main() {
	var (
		width      = flag.Int("width", 0, "Grid width (default 16, or the config value)")
		height     = flag.Int("height", 0, "Grid height (default 16, or the config value)")
		configPath = flag.String("config", "", "YAML file with width, height, start and end")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, width, height int) error {
	cfg := navigator.DefaultConfig()
	if configPath != "" {
		loaded, err := navigator.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}

	nav, err := navigator.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return tui.Run(screen, tui.NewView(nav))
}
