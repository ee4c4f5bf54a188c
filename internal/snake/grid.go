// Package snake implements the grid snake widget: a snake moving on a small
// wraparound board, eating food, speeding up as it scores.
package snake

import "fmt"

// GridSize is the side length of the square board.
const GridSize = 10

// Position is a cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is the heading the snake's head moves along.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets snapshots carry the heading as "UP", "LEFT", ...
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	for _, c := range []Direction{Up, Down, Left, Right} {
		if c.String() == string(b) {
			*d = c
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", b)
}

// delta returns the (row, col) offset for one step.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Advance moves p one cell along d, wrapping at the board edges.
func Advance(p Position, d Direction) Position {
	dr, dc := d.delta()
	return Position{
		Row: wrap(p.Row + dr),
		Col: wrap(p.Col + dc),
	}
}

func wrap(v int) int {
	v %= GridSize
	if v < 0 {
		v += GridSize
	}
	return v
}

var keyDirections = map[string]Direction{
	"ArrowUp":    Up,
	"ArrowDown":  Down,
	"ArrowLeft":  Left,
	"ArrowRight": Right,
}

// ParseKey maps a browser key name to a heading. Any other key is reported
// as not ok and should be dropped.
func ParseKey(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}
