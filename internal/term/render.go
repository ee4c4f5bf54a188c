// Package term draws snake snapshots on a tcell screen and maps terminal
// keys to game input.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/snake"
)

const (
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
	block     = '█'
)

var (
	snakeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer paints the board with its top-left corner at (X, Y).
type Renderer struct {
	Screen tcell.Screen
	X, Y   int
	Lang   cv.Language
}

// Layout: title, level, score, blank, 10 board rows, blank, game over, hint.
const (
	boardTop = 4
	height   = boardTop + snake.GridSize + 3
)

// Draw paints snap and flushes the screen.
func (r *Renderer) Draw(snap snake.Snapshot) {
	r.Screen.Clear()

	r.text(0, cv.T(r.Lang, cv.KeySnakeTitle), textStyle)
	r.text(1, fmt.Sprintf("%s: %d", cv.T(r.Lang, cv.KeyLevel), snap.Level), textStyle)
	r.text(2, fmt.Sprintf("%s: %d", cv.T(r.Lang, cv.KeyScore), snap.Score), textStyle)

	for row := 0; row < snake.GridSize; row++ {
		for col := 0; col < snake.GridSize; col++ {
			style := emptyStyle
			p := snake.Position{Row: row, Col: col}
			switch {
			case snap.Occupies(p):
				style = snakeStyle
			case snap.Food == p:
				style = foodStyle
			}
			x := r.X + col*cellWidth
			y := r.Y + boardTop + row
			for i := 0; i < cellWidth; i++ {
				r.Screen.SetContent(x+i, y, block, nil, style)
			}
		}
	}

	if snap.GameOver {
		r.text(boardTop+snake.GridSize+1, cv.T(r.Lang, cv.KeyGameOver), alertStyle)
		r.text(boardTop+snake.GridSize+2, cv.T(r.Lang, cv.KeyPlayAgainHint), textStyle)
	}

	r.Screen.Show()
}

func (r *Renderer) text(line int, s string, style tcell.Style) {
	x := r.X
	for _, ch := range s {
		r.Screen.SetContent(x, r.Y+line, ch, nil, style)
		x++
	}
}

// Center positions the board in the middle of the screen.
func (r *Renderer) Center() {
	w, h := r.Screen.Size()
	r.X = max(0, (w-snake.GridSize*cellWidth)/2)
	r.Y = max(0, (h-height)/2)
}
