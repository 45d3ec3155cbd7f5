package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Handle applies one terminal event. It reports quit=true when the user asked
// to leave. Errors come from the navigator and should not occur for events
// produced by a screen, since positions are bounds-checked first.
func (v *View) Handle(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		return false, v.handleMouse(ev)
	}

	return false, nil
}

func (v *View) handleKey(ev *tcell.EventKey) (bool, error) {
	g := v.nav.Grid()
	move := func(dx, dy int) {
		if g.InBounds(v.cursor.X+dx, v.cursor.Y+dy) {
			v.cursor.X += dx
			v.cursor.Y += dy
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		move(0, -1)
	case tcell.KeyDown:
		move(0, 1)
	case tcell.KeyLeft:
		move(-1, 0)
	case tcell.KeyRight:
		move(1, 0)
	case tcell.KeyEnter:
		return false, v.nav.ToggleObstacle(v.cursor.X, v.cursor.Y)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true, nil
		case ' ':
			return false, v.nav.ToggleObstacle(v.cursor.X, v.cursor.Y)
		case 's', 'S':
			return false, v.nav.SetStart(v.cursor.X, v.cursor.Y)
		case 'e', 'E':
			return false, v.nav.SetEnd(v.cursor.X, v.cursor.Y)
		case 'c', 'C':
			return false, v.nav.ClearObstacles()
		}
	}

	return false, nil
}

// handleMouse acts when the primary button is released over a cell: plain
// click toggles an obstacle, Shift moves the start, Ctrl moves the end.
func (v *View) handleMouse(ev *tcell.EventMouse) error {
	prev := v.buttons
	v.buttons = ev.Buttons()

	p, ok := v.CellAt(ev.Position())
	if ok {
		v.cursor = p
	}
	if prev&tcell.Button1 == 0 && v.buttons&tcell.Button1 != 0 {
		v.mods = ev.Modifiers()
		return nil
	}
	if prev&tcell.Button1 == 0 || v.buttons&tcell.Button1 != 0 || !ok {
		return nil
	}

	switch {
	case v.mods&tcell.ModShift != 0:
		return v.nav.SetStart(p.X, p.Y)
	case v.mods&tcell.ModCtrl != 0:
		return v.nav.SetEnd(p.X, p.Y)
	default:
		return v.nav.ToggleObstacle(p.X, p.Y)
	}
}

// Run draws v on s and processes events until the user quits or the screen
// is finalized. The caller owns s and must have called Init on it.
func Run(s tcell.Screen, v *View) error {
	s.EnableMouse()
	for {
		v.Draw(s)
		s.Show()

		ev := s.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.Sync()
		}
		quit, err := v.Handle(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
