package field

import "math/rand"

type op struct {
	kind   string
	coords []float64
	color  Color
	width  float64
}

type recordingSurface struct {
	width, height float64
	resizes       int
	ops           []op
}

func (s *recordingSurface) Resize(w, h float64) {
	s.width, s.height = w, h
	s.resizes++
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, op{kind: "clear"})
}

func (s *recordingSurface) DrawCircle(x, y, r float64, c Color) {
	s.ops = append(s.ops, op{kind: "circle", coords: []float64{x, y, r}, color: c})
}

func (s *recordingSurface) DrawLine(x1, y1, x2, y2 float64, c Color, width float64) {
	s.ops = append(s.ops, op{kind: "line", coords: []float64{x1, y1, x2, y2}, color: c, width: width})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

type stubPointer struct {
	handler func(x, y float64)
}

func (p *stubPointer) OnMove(h func(x, y float64)) { p.handler = h }

func newTestAnimator(params Params) (*Animator, *recordingSurface, *ManualClock) {
	surf := &recordingSurface{}
	clock := NewManualClock()
	a, err := New(surf, clock, params, rand.New(rand.NewSource(7)))
	if err != nil {
		panic(err)
	}
	return a, surf, clock
}
