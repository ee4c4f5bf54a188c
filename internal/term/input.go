package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/carcruz97/portfolio/internal/snake"
)

// Action is what a key press asks the client to do.
type Action uint8

const (
	None Action = iota
	Steer
	Restart
	ToggleLanguage
	Quit
)

var arrowDirections = map[tcell.Key]snake.Direction{
	tcell.KeyUp:    snake.Up,
	tcell.KeyDown:  snake.Down,
	tcell.KeyLeft:  snake.Left,
	tcell.KeyRight: snake.Right,
}

// Decode maps a key event. The direction is only meaningful for Steer.
func Decode(ev *tcell.EventKey) (Action, snake.Direction) {
	if d, ok := arrowDirections[ev.Key()]; ok {
		return Steer, d
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Quit, 0
		case 'r':
			return Restart, 0
		case 'l':
			return ToggleLanguage, 0
		}
	}
	return None, 0
}
