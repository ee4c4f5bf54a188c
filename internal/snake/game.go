package snake

import (
	"math/rand/v2"
	"time"
)

var (
	startHead    = Position{Row: 0, Col: 0}
	startFood    = Position{Row: 5, Col: 5}
	startHeading = Right
)

// Rand picks food cells. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Outcome describes what a single Tick did.
type Outcome uint8

const (
	Moved    Outcome = iota // head advanced, tail dropped
	Grew                    // food eaten, tail kept
	Collided                // head hit the body, game over
	Halted                  // game already over, nothing happened
)

// Game is the simulation state. It is not safe for concurrent use; Runner
// serializes access when input and ticks come from different goroutines.
type Game struct {
	rules Rules
	rng   Rand

	snake    []Position
	food     Position
	heading  Direction
	score    int
	level    int
	gameOver bool
}

// New returns a game in its starting state. A nil rng is seeded from the clock.
func New(rules Rules, rng Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	g := &Game{rules: rules, rng: rng}
	g.Reset()
	return g
}

// Reset restores the starting state. It may be called at any time.
func (g *Game) Reset() {
	g.snake = []Position{startHead}
	g.food = startFood
	g.heading = startHeading
	g.score = 0
	g.level = 1
	g.gameOver = false
}

// SetHeading changes the direction used by the next Tick. Reversing into the
// body is allowed.
func (g *Game) SetHeading(d Direction) {
	g.heading = d
}

// Tick advances the simulation one step. A fatal step leaves snake, food,
// score and level exactly as they were.
func (g *Game) Tick() Outcome {
	if g.gameOver {
		return Halted
	}

	head := Advance(g.snake[0], g.heading)
	ate := head == g.food

	body := g.snake
	if !ate {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.gameOver = true
			return Collided
		}
	}

	next := make([]Position, 0, len(body)+1)
	next = append(next, head)
	next = append(next, body...)
	g.snake = next

	if !ate {
		return Moved
	}

	// Food may land on the snake; occupancy is not checked.
	g.food = Position{Row: g.rng.IntN(GridSize), Col: g.rng.IntN(GridSize)}
	g.score++
	if g.score%g.rules.PointsPerLevel == 0 && g.level < g.rules.MaxLevel {
		g.level++
	}
	return Grew
}

func (g *Game) Level() int { return g.level }

func (g *Game) GameOver() bool { return g.gameOver }

// Interval is the tick period for the current level.
func (g *Game) Interval() time.Duration { return g.rules.Interval(g.level) }

// Snapshot is the render-facing view of a game after a tick.
type Snapshot struct {
	Snake      []Position `json:"snake"`
	Food       Position   `json:"food"`
	Heading    Direction  `json:"heading"`
	Score      int        `json:"score"`
	Level      int        `json:"level"`
	GameOver   bool       `json:"gameOver"`
	IntervalMs int64      `json:"intervalMs"`
}

// Snapshot copies the visible state.
func (g *Game) Snapshot() Snapshot {
	segs := make([]Position, len(g.snake))
	copy(segs, g.snake)
	return Snapshot{
		Snake:      segs,
		Food:       g.food,
		Heading:    g.heading,
		Score:      g.score,
		Level:      g.level,
		GameOver:   g.gameOver,
		IntervalMs: g.Interval().Milliseconds(),
	}
}

// Occupies reports whether any snake segment sits on p.
func (s Snapshot) Occupies(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}
