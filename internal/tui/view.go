// Package tui is a terminal front end for a navigator.Navigator. It draws the
// grid mesh, the obstacle, visited and endpoint cells and the current route,
// and turns mouse clicks and key presses into edits.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/navigator"
)

// Screen geometry: each grid cell owns a pitchX×pitchY block of terminal
// cells. The cell fill spans columns 1..3 of the block on its first row; the
// fourth column and the second row carry the links to the right and lower
// neighbours.
const (
	pitchX = 4
	pitchY = 2
	fillW  = 3
)

var (
	styleMesh     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleLink     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleFree     = tcell.StyleDefault.Background(tcell.ColorDarkCyan)
	styleObstacle = tcell.StyleDefault.Background(tcell.ColorFuchsia)
	styleVisited  = tcell.StyleDefault.Background(tcell.ColorGray)
	styleStart    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleEnd      = tcell.StyleDefault.Background(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View renders a Navigator and applies user input to it.
type View struct {
	nav    *navigator.Navigator
	cursor navigator.Point

	buttons tcell.ButtonMask // buttons held at the previous mouse event
	mods    tcell.ModMask    // modifiers held when Button1 went down
}

// NewView returns a View with the cursor on the start cell.
func NewView(nav *navigator.Navigator) *View {
	return &View{nav: nav, cursor: nav.Start()}
}

// Cursor returns the keyboard cursor position.
func (v *View) Cursor() navigator.Point { return v.cursor }

// CellAt maps a terminal position to the grid cell whose block contains it.
func (v *View) CellAt(col, row int) (navigator.Point, bool) {
	if col < 0 || row < 0 {
		return navigator.Point{}, false
	}
	p := navigator.Point{X: col / pitchX, Y: row / pitchY}

	return p, v.nav.Grid().InBounds(p.X, p.Y)
}

// Draw paints the whole view onto s. It does not call s.Show.
func (v *View) Draw(s tcell.Screen) {
	s.Clear()
	g := v.nav.Grid()

	// adjacency mesh, taken from the static neighbour lists
	for idx := 0; idx < g.Len(); idx++ {
		for _, n := range g.Neighbours(idx) {
			if n > idx {
				v.drawLink(s, idx, n, styleMesh)
			}
		}
	}

	// route links between consecutive path cells
	path := v.nav.Result().Path
	for i := 1; i < len(path); i++ {
		v.drawLink(s, path[i-1], path[i], styleLink)
	}

	onPath := make(map[int]bool, len(path))
	for _, idx := range path {
		onPath[idx] = true
	}
	start, end := v.nav.Start(), v.nav.End()
	for idx := 0; idx < g.Len(); idx++ {
		c := g.At(idx)
		style := styleFree
		switch {
		case c.X == end.X && c.Y == end.Y:
			style = styleEnd
		case c.X == start.X && c.Y == start.Y:
			style = styleStart
		case c.Obstacle:
			style = styleObstacle
		case c.Search.Visited:
			style = styleVisited
		}
		runes := [fillW]rune{' ', ' ', ' '}
		if onPath[idx] {
			runes[1] = '•'
			style = style.Foreground(tcell.ColorYellow)
		}
		if c.X == v.cursor.X && c.Y == v.cursor.Y {
			runes[0], runes[2] = '[', ']'
		}
		col, row := c.X*pitchX+1, c.Y*pitchY
		for i, r := range runes {
			s.SetContent(col+i, row, r, nil, style)
		}
	}

	drawText(s, 0, g.Height()*pitchY, styleStatus, v.status())
}

// drawLink draws the connector between two orthogonally adjacent cells.
func (v *View) drawLink(s tcell.Screen, a, b int, style tcell.Style) {
	g := v.nav.Grid()
	if a > b {
		a, b = b, a
	}
	ax, ay := g.Coordinate(a)
	bx, _ := g.Coordinate(b)
	if bx != ax {
		s.SetContent(ax*pitchX+pitchX, ay*pitchY, '─', nil, style)
		return
	}
	s.SetContent(ax*pitchX+2, ay*pitchY+1, '│', nil, style)
}

// status summarizes the last search for the bottom line.
func (v *View) status() string {
	res := v.nav.Result()
	regions := len(v.nav.Grid().ConnectedComponents())
	route := "no path"
	if res.Found {
		route = fmt.Sprintf("cost %.0f", res.Cost)
	}

	return fmt.Sprintf("%s | visited %d | regions %d | click: wall  shift: start  ctrl: end  q: quit",
		route, res.Expanded, regions)
}

func drawText(s tcell.Screen, col, row int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
}
