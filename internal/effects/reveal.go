package effects

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultRevealThreshold = 0.1
	revealRise             = 3.0 // rows an item travels while revealing
	settleEpsilon          = 0.01
)

// Span is an item's vertical extent in content rows. A zero Threshold uses
// the Reveal's default. Margin shrinks the bottom of the viewport for this
// item. Items with a Stagger that trigger in the same Observe call start
// one Stagger apart, in order.
type Span struct {
	Top, Height int
	Threshold   float64
	Margin      int
	Stagger     time.Duration
}

type revealItem struct {
	span      Span
	triggered bool
	wait      int // frames left before the item starts moving
	offset    float64
	offVel    float64
	opacity   float64
	opVel     float64
}

// Reveal fades items in and slides them up once enough of them has entered
// the viewport. A revealed item never hides again.
type Reveal struct {
	Threshold float64 // fraction of an item that must be visible

	spring harmonica.Spring
	frame  time.Duration
	items  []revealItem
}

func NewReveal(fps int, spans []Span) *Reveal {
	if fps <= 0 {
		fps = 60
	}
	r := &Reveal{
		Threshold: DefaultRevealThreshold,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8),
		frame:     time.Second / time.Duration(fps),
	}
	r.SetSpans(spans)
	return r
}

// SetSpans replaces the tracked items, keeping the reveal state of items
// that still exist at the same index.
func (r *Reveal) SetSpans(spans []Span) {
	items := make([]revealItem, len(spans))
	for i, s := range spans {
		if i < len(r.items) {
			items[i] = r.items[i]
		} else {
			items[i] = revealItem{offset: revealRise}
		}
		items[i].span = s
	}
	r.items = items
}

// Observe marks items intersecting the viewport [top, top+height).
func (r *Reveal) Observe(top, height int) {
	batch := 0
	for i := range r.items {
		it := &r.items[i]
		if it.triggered {
			continue
		}
		h := max(it.span.Height, 1)
		bottom := max(top+height-it.span.Margin, top+1)
		visible := min(bottom, it.span.Top+h) - max(top, it.span.Top)
		threshold := it.span.Threshold
		if threshold <= 0 {
			threshold = r.Threshold
		}
		if visible <= 0 || float64(visible) < threshold*float64(h) {
			continue
		}
		it.triggered = true
		if it.span.Stagger > 0 {
			delay := it.span.Stagger * time.Duration(batch)
			it.wait = int(math.Ceil(float64(delay) / float64(r.frame)))
			batch++
		}
	}
}

// Step advances the springs of revealed items by one frame.
func (r *Reveal) Step() {
	for i := range r.items {
		it := &r.items[i]
		if !it.triggered {
			continue
		}
		if it.wait > 0 {
			it.wait--
			continue
		}
		it.offset, it.offVel = r.spring.Update(it.offset, it.offVel, 0)
		it.opacity, it.opVel = r.spring.Update(it.opacity, it.opVel, 1)
	}
}

// Revealed reports whether item i has entered view and its stagger delay
// has run out.
func (r *Reveal) Revealed(i int) bool {
	return i >= 0 && i < len(r.items) && r.items[i].triggered && r.items[i].wait == 0
}

// Offset is how many rows item i still sits below its resting place.
func (r *Reveal) Offset(i int) int {
	if i < 0 || i >= len(r.items) {
		return 0
	}
	o := r.items[i].offset
	if o < settleEpsilon {
		return 0
	}
	return int(o + 0.5)
}

// Opacity of item i, clamped to [0, 1].
func (r *Reveal) Opacity(i int) float64 {
	if i < 0 || i >= len(r.items) {
		return 0
	}
	return clamp01(r.items[i].opacity)
}

// Settled reports whether every revealed item has come to rest.
func (r *Reveal) Settled() bool {
	for _, it := range r.items {
		if !it.triggered {
			continue
		}
		if it.wait > 0 || it.offset > settleEpsilon || 1-it.opacity > settleEpsilon {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
