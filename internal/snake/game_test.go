package snake

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// seqRand returns the queued values in order, then zeros.
type seqRand struct {
	vals []int
}

func (s *seqRand) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func newTestGame(rng ...int) *Game {
	return New(DefaultRules(), &seqRand{vals: rng})
}

func TestAdvanceStaysOnBoard(t *testing.T) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			for _, d := range []Direction{Up, Down, Left, Right} {
				p := Advance(Position{row, col}, d)
				if p.Row < 0 || p.Row >= GridSize || p.Col < 0 || p.Col >= GridSize {
					t.Fatalf("Advance(%d,%d,%s) = %+v, off board", row, col, d, p)
				}
			}
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"right", Position{0, 0}, Right, Position{0, 1}},
		{"right edge", Position{3, 9}, Right, Position{3, 0}},
		{"left edge", Position{0, 0}, Left, Position{0, 9}},
		{"top edge", Position{0, 4}, Up, Position{9, 4}},
		{"bottom edge", Position{9, 4}, Down, Position{0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.from, tt.dir); got != tt.want {
				t.Errorf("Advance(%+v, %s) = %+v, want %+v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	for key, want := range map[string]Direction{
		"ArrowUp": Up, "ArrowDown": Down, "ArrowLeft": Left, "ArrowRight": Right,
	} {
		got, ok := ParseKey(key)
		if !ok || got != want {
			t.Errorf("ParseKey(%q) = %s, %v", key, got, ok)
		}
	}
	for _, key := range []string{"", "w", "Enter", "arrowup"} {
		if _, ok := ParseKey(key); ok {
			t.Errorf("ParseKey(%q) accepted", key)
		}
	}
}

func TestStartingState(t *testing.T) {
	snap := newTestGame().Snapshot()

	if !reflect.DeepEqual(snap.Snake, []Position{{0, 0}}) {
		t.Errorf("snake = %+v", snap.Snake)
	}
	if snap.Food != (Position{5, 5}) {
		t.Errorf("food = %+v", snap.Food)
	}
	if snap.Score != 0 || snap.Level != 1 || snap.GameOver {
		t.Errorf("score=%d level=%d over=%v", snap.Score, snap.Level, snap.GameOver)
	}
	if snap.Heading != Right {
		t.Errorf("heading = %s", snap.Heading)
	}
	if snap.IntervalMs != 500 {
		t.Errorf("interval = %dms", snap.IntervalMs)
	}
}

func TestTickMovesRight(t *testing.T) {
	g := newTestGame()

	if out := g.Tick(); out != Moved {
		t.Fatalf("outcome = %d, want Moved", out)
	}
	if got := g.Snapshot().Snake; !reflect.DeepEqual(got, []Position{{0, 1}}) {
		t.Errorf("snake = %+v, want [(0,1)]", got)
	}
}

func TestTickEatsFood(t *testing.T) {
	g := newTestGame(2, 7)
	g.snake = []Position{{5, 4}}

	if out := g.Tick(); out != Grew {
		t.Fatalf("outcome = %d, want Grew", out)
	}
	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Snake, []Position{{5, 5}, {5, 4}}) {
		t.Errorf("snake = %+v", snap.Snake)
	}
	if snap.Score != 1 {
		t.Errorf("score = %d", snap.Score)
	}
	if snap.Food != (Position{2, 7}) {
		t.Errorf("food = %+v, want (2,7)", snap.Food)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d", snap.Level)
	}
}

func TestFoodMayLandOnSnake(t *testing.T) {
	// Relocation ignores occupancy: (5,5) is the new head.
	g := newTestGame(5, 5)
	g.snake = []Position{{5, 4}}

	g.Tick()
	snap := g.Snapshot()
	if !snap.Occupies(snap.Food) {
		t.Errorf("food %+v expected on snake %+v", snap.Food, snap.Snake)
	}
}

func TestLevelRamp(t *testing.T) {
	g := newTestGame()
	// Keep food one step ahead of the head so every tick eats.
	feed := func() {
		g.food = Advance(g.snake[0], g.heading)
		if out := g.Tick(); out != Grew {
			t.Fatalf("outcome = %d at score %d", out, g.score)
		}
	}

	want := map[int]int{4: 1, 5: 2, 9: 2, 10: 3, 15: 3}
	prev := g.Interval()
	for score := 1; score <= 15; score++ {
		if score%GridSize == 0 {
			// Turn before the snake can run into its own tail.
			g.SetHeading(Down)
		}
		feed()
		if lvl, ok := want[score]; ok && g.Level() != lvl {
			t.Errorf("score %d: level = %d, want %d", score, g.Level(), lvl)
		}
		if g.Interval() > prev {
			t.Errorf("score %d: interval grew to %s", score, g.Interval())
		}
		prev = g.Interval()
	}
	if g.Interval() != 300*time.Millisecond {
		t.Errorf("final interval = %s", g.Interval())
	}
}

func TestWrapIsNotCollision(t *testing.T) {
	g := newTestGame()
	g.snake = []Position{{0, 0}, {0, 1}, {0, 2}}
	g.SetHeading(Left)

	if out := g.Tick(); out != Moved {
		t.Fatalf("outcome = %d, want Moved", out)
	}
	if got := g.Snapshot().Snake; !reflect.DeepEqual(got, []Position{{0, 9}, {0, 0}, {0, 1}}) {
		t.Errorf("snake = %+v", got)
	}
	if g.GameOver() {
		t.Error("wraparound ended the game")
	}
}

func TestSelfCollisionDiscardsTick(t *testing.T) {
	g := newTestGame()
	g.snake = []Position{{0, 1}, {0, 0}, {1, 0}}
	g.score = 3
	g.SetHeading(Left)
	before := g.Snapshot()

	if out := g.Tick(); out != Collided {
		t.Fatalf("outcome = %d, want Collided", out)
	}
	after := g.Snapshot()
	if !after.GameOver {
		t.Fatal("game not over")
	}
	after.GameOver = false
	if !reflect.DeepEqual(before, after) {
		t.Errorf("state changed on fatal tick:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestCollisionOnFoodKeepsFood(t *testing.T) {
	// Head lands on food that sits on the body: no score, no relocation.
	g := newTestGame(1, 1)
	g.snake = []Position{{0, 1}, {0, 0}, {1, 0}}
	g.food = Position{0, 0}
	g.SetHeading(Left)

	if out := g.Tick(); out != Collided {
		t.Fatalf("outcome = %d, want Collided", out)
	}
	if g.food != (Position{0, 0}) || g.score != 0 {
		t.Errorf("food=%+v score=%d after fatal tick", g.food, g.score)
	}
}

func TestHaltedUntilReset(t *testing.T) {
	g := newTestGame()
	g.snake = []Position{{0, 1}, {0, 0}, {1, 0}}
	g.SetHeading(Left)
	g.Tick()

	g.SetHeading(Down)
	if out := g.Tick(); out != Halted {
		t.Fatalf("outcome = %d, want Halted", out)
	}

	g.Reset()
	fresh := newTestGame()
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("reset state %+v, want %+v", g.Snapshot(), fresh.Snapshot())
	}
	g.Tick()
	fresh.Tick()
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("tick after reset %+v, want %+v", g.Snapshot(), fresh.Snapshot())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame()
	snap := g.Snapshot()
	snap.Snake[0] = Position{9, 9}
	if g.snake[0] != (Position{0, 0}) {
		t.Error("snapshot aliases game state")
	}
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules: %v", err)
	}
	bad := []Rules{
		{BaseInterval: 200 * time.Millisecond, IntervalStep: 100 * time.Millisecond, PointsPerLevel: 5, MaxLevel: 3},
		{BaseInterval: time.Second, PointsPerLevel: 0, MaxLevel: 3},
		{BaseInterval: time.Second, PointsPerLevel: 5, MaxLevel: 0},
		{BaseInterval: time.Second, IntervalStep: -time.Millisecond, PointsPerLevel: 5, MaxLevel: 3},
	}
	for i, r := range bad {
		if err := r.Validate(); !errors.Is(err, ErrInvalidRules) {
			t.Errorf("case %d: err = %v, want ErrInvalidRules", i, err)
		}
	}
}

func TestRulesIntervalClamps(t *testing.T) {
	r := DefaultRules()
	if r.Interval(0) != 500*time.Millisecond || r.Interval(7) != 300*time.Millisecond {
		t.Errorf("Interval(0)=%s Interval(7)=%s", r.Interval(0), r.Interval(7))
	}
}
