package metrics

import (
	"time"

	"github.com/san-kum/synapse/internal/field"
)

const DefaultCapacity = 600

// Sample summarises one rendered frame.
type Sample struct {
	Frame       uint64
	Edges       int
	MeanOpacity float64
	MeanSpeed   float64
	Duration    time.Duration
}

// Frames keeps a bounded history of frame samples.
type Frames struct {
	capacity int
	samples  []Sample
}

func NewFrames(capacity int) *Frames {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Frames{capacity: capacity, samples: make([]Sample, 0, capacity)}
}

// Observe records the animator's current frame.
func (f *Frames) Observe(a *field.Animator, took time.Duration) Sample {
	s := Measure(a)
	s.Duration = took
	f.samples = append(f.samples, s)
	if len(f.samples) > f.capacity {
		f.samples = f.samples[1:]
	}
	return s
}

// Measure computes a sample without recording it.
func Measure(a *field.Animator) Sample {
	s := Sample{Frame: a.Frames()}
	edges := a.Edges()
	s.Edges = len(edges)
	for _, e := range edges {
		s.MeanOpacity += e.Opacity
	}
	if len(edges) > 0 {
		s.MeanOpacity /= float64(len(edges))
	}
	nodes := a.Nodes()
	for _, n := range nodes {
		s.MeanSpeed += n.Vel.Len()
	}
	if len(nodes) > 0 {
		s.MeanSpeed /= float64(len(nodes))
	}
	return s
}

func (f *Frames) Samples() []Sample {
	out := make([]Sample, len(f.samples))
	copy(out, f.samples)
	return out
}

func (f *Frames) Len() int { return len(f.samples) }

func (f *Frames) Reset() { f.samples = f.samples[:0] }

// EdgeSeries and DurationSeries feed charts.
func (f *Frames) EdgeSeries() []float64 {
	out := make([]float64, len(f.samples))
	for i, s := range f.samples {
		out[i] = float64(s.Edges)
	}
	return out
}

// DurationSeries is in milliseconds.
func (f *Frames) DurationSeries() []float64 {
	out := make([]float64, len(f.samples))
	for i, s := range f.samples {
		out[i] = float64(s.Duration) / float64(time.Millisecond)
	}
	return out
}

// Mean returns the average edge count and frame duration.
func (f *Frames) Mean() (edges float64, took time.Duration) {
	if len(f.samples) == 0 {
		return 0, 0
	}
	var total time.Duration
	for _, s := range f.samples {
		edges += float64(s.Edges)
		total += s.Duration
	}
	n := len(f.samples)
	return edges / float64(n), total / time.Duration(n)
}
