package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Scroller eases the content offset towards a target row.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	limit  float64
}

func NewScroller(fps int) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// SetLimit sets the largest reachable offset and re-clamps the target.
func (s *Scroller) SetLimit(limit int) {
	s.limit = math.Max(0, float64(limit))
	s.target = s.clamp(s.target)
}

func (s *Scroller) clamp(v float64) float64 {
	return math.Max(0, math.Min(v, s.limit))
}

// ScrollTo aims at row; ScrollBy aims relative to the current target.
func (s *Scroller) ScrollTo(row int)  { s.target = s.clamp(float64(row)) }
func (s *Scroller) ScrollBy(rows int) { s.target = s.clamp(s.target + float64(rows)) }

// Step moves the offset one frame closer to the target.
func (s *Scroller) Step() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos, s.vel = s.target, 0
	}
}

// Offset is the current whole-row offset, never outside [0, limit].
func (s *Scroller) Offset() int {
	return int(math.Round(s.clamp(s.pos)))
}

func (s *Scroller) Target() int   { return int(s.target) }
func (s *Scroller) Settled() bool { return s.pos == s.target && s.vel == 0 }
