package effects

import (
	"math/rand"
	"testing"
)

func TestRainActivatesAndStaysInBounds(t *testing.T) {
	r := NewRain(rand.New(rand.NewSource(1)))
	r.Density = 1
	r.Resize(20, 10)

	r.Step()
	if r.Active() != 20 {
		t.Fatalf("expected 20 active columns, got %d", r.Active())
	}
	cells := r.Cells()
	if len(cells) != 20 {
		t.Errorf("expected one head per column, got %d cells", len(cells))
	}
	for i := 0; i < 50; i++ {
		r.Step()
		for _, c := range r.Cells() {
			if c.Col < 0 || c.Col >= 20 || c.Row < 0 || c.Row >= 10 {
				t.Fatalf("cell out of bounds: %+v", c)
			}
			if c.Fade <= 0 || c.Fade > 1 {
				t.Fatalf("fade out of range: %+v", c)
			}
		}
	}
}

func TestRainDrainsWhenIdle(t *testing.T) {
	r := NewRain(rand.New(rand.NewSource(2)))
	r.Density = 1
	r.Resize(8, 5)
	r.Step()
	r.Density = 0
	for i := 0; i < 200; i++ {
		r.Step()
	}
	if r.Active() != 0 {
		t.Errorf("expected all drops finished, got %d active", r.Active())
	}
	if len(r.Cells()) != 0 {
		t.Errorf("expected no cells, got %d", len(r.Cells()))
	}
}

func TestRainResize(t *testing.T) {
	r := NewRain(nil)
	r.Resize(30, 10)
	r.Resize(12, 4)
	r.Density = 1
	r.Step()
	if r.Active() != 12 {
		t.Errorf("expected 12 columns, got %d", r.Active())
	}
}
