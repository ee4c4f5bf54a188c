package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("invalid snake rules")

// Rules holds the difficulty ramp.
type Rules struct {
	BaseInterval   time.Duration // tick period at level 1
	IntervalStep   time.Duration // subtracted per level above 1
	PointsPerLevel int
	MaxLevel       int
}

// DefaultRules returns the stock ramp: 500ms, 400ms and 300ms across three levels,
// one level every 5 points.
func DefaultRules() Rules {
	return Rules{
		BaseInterval:   500 * time.Millisecond,
		IntervalStep:   100 * time.Millisecond,
		PointsPerLevel: 5,
		MaxLevel:       3,
	}
}

// Interval returns the tick period for level. Levels outside [1, MaxLevel]
// are clamped.
func (r Rules) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level > r.MaxLevel {
		level = r.MaxLevel
	}
	return r.BaseInterval - time.Duration(level-1)*r.IntervalStep
}

func (r Rules) Validate() error {
	if r.MaxLevel < 1 {
		return fmt.Errorf("%w: max level %d", ErrInvalidRules, r.MaxLevel)
	}
	if r.PointsPerLevel < 1 {
		return fmt.Errorf("%w: points per level %d", ErrInvalidRules, r.PointsPerLevel)
	}
	if r.IntervalStep < 0 {
		return fmt.Errorf("%w: negative interval step", ErrInvalidRules)
	}
	if fastest := r.Interval(r.MaxLevel); fastest <= 0 {
		return fmt.Errorf("%w: level %d interval is %s", ErrInvalidRules, r.MaxLevel, fastest)
	}
	return nil
}
