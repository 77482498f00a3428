package metrics

import (
	"github.com/san-kum/synapse/internal/field"
)

type nopSurface struct{}

func (nopSurface) Resize(w, h float64)                                       {}
func (nopSurface) Clear()                                                    {}
func (nopSurface) DrawCircle(x, y, r float64, c field.Color)                 {}
func (nopSurface) DrawLine(x1, y1, x2, y2 float64, c field.Color, w float64) {}
