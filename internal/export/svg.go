package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/synapse/internal/field"
)

// SVGSurface records the animator's drawing calls as SVG elements. Clear
// drops everything drawn so far, so the document holds the last frame.
type SVGSurface struct {
	Background string

	width, height float64
	body          strings.Builder
	circles       int
	lines         int
}

func NewSVGSurface(background string) *SVGSurface {
	if background == "" {
		background = "#0a192f"
	}
	return &SVGSurface{Background: background}
}

func (s *SVGSurface) Resize(width, height float64) {
	s.width, s.height = width, height
	s.Clear()
}

func (s *SVGSurface) Clear() {
	s.body.Reset()
	s.circles, s.lines = 0, 0
}

func (s *SVGSurface) DrawCircle(x, y, r float64, c field.Color) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, x, y, r, hex(c), c.A))
	s.circles++
}

func (s *SVGSurface) DrawLine(x1, y1, x2, y2 float64, c field.Color, width float64) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.1f"/>
`, x1, y1, x2, y2, hex(c), c.A, width))
	s.lines++
}

// Counts reports the elements of the current frame.
func (s *SVGSurface) Counts() (circles, lines int) {
	return s.circles, s.lines
}

// String returns the complete SVG document.
func (s *SVGSurface) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, s.Background))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

// WriteTo writes the document to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func hex(c field.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
