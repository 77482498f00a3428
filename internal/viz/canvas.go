package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/synapse/internal/field"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank              = 0x2800
	DefaultUnitsPerDot = 4.0
)

// Canvas is a braille raster. Field coordinates are divided by UnitsPerDot
// to land on dots; each cell remembers the most opaque colour drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Tint          [][]field.Color
	UnitsPerDot   float64
	text          [][]bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{UnitsPerDot: DefaultUnitsPerDot}
	c.alloc(w, h)
	return c
}

func (c *Canvas) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Tint = make([][]field.Color, h)
	c.text = make([][]bool, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tint[i] = make([]field.Color, w)
		c.text[i] = make([]bool, w)
	}
	c.Clear()
}

// FieldSize is the surface size in field units covered by the cells.
func (c *Canvas) FieldSize() (float64, float64) {
	return float64(c.Width*2) * c.UnitsPerDot, float64(c.Height*4) * c.UnitsPerDot
}

// Resize reallocates the grid to cover width x height field units.
func (c *Canvas) Resize(width, height float64) {
	cols := int(math.Ceil(width / c.UnitsPerDot / 2))
	rows := int(math.Ceil(height / c.UnitsPerDot / 4))
	if cols == c.Width && rows == c.Height {
		c.Clear()
		return
	}
	c.alloc(cols, rows)
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.plot(x, y, field.Color{R: 255, G: 255, B: 255, A: 1})
}

func (c *Canvas) plot(x, y int, col field.Color) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height || c.text[row][cx] {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	if col.A >= c.Tint[row][cx].A {
		c.Tint[row][cx] = col
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height || c.text[row][col] {
		return
	}

	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Tint[i][j] = field.Color{}
			c.text[i][j] = false
		}
	}
}

// Stamp writes a glyph into a whole cell, hiding any dots under it.
func (c *Canvas) Stamp(col, row int, r rune, tint field.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
	c.Tint[row][col] = tint
	c.text[row][col] = true
}

func (c *Canvas) dot(v float64) int {
	return int(math.Floor(v / c.UnitsPerDot))
}

// DrawCircle fills every dot within r of the centre; tiny circles still
// light their centre dot.
func (c *Canvas) DrawCircle(x, y, r float64, col field.Color) {
	cx, cy := x/c.UnitsPerDot, y/c.UnitsPerDot
	rd := r / c.UnitsPerDot
	c.plot(c.dot(x), c.dot(y), col)
	for py := int(math.Floor(cy - rd)); py <= int(math.Ceil(cy+rd)); py++ {
		for px := int(math.Floor(cx - rd)); px <= int(math.Ceil(cx+rd)); px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= rd*rd {
				c.plot(px, py, col)
			}
		}
	}
}

// DrawLine maps a field-space segment onto dots. Widths up to one dot are
// all drawn one dot wide.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col field.Color, width float64) {
	c.line(c.dot(x1), c.dot(y1), c.dot(x2), c.dot(y2), col)
}

func (c *Canvas) line(x0, y0, x1, y1 int, col field.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours every lit cell by blending its tint over bg. Runs of equal
// colour share one style.
func (c *Canvas) Render(bg lipgloss.Color) string {
	br, bgc, bb := parseHex(string(bg))
	base := field.Color{R: uint8(br), G: uint8(bgc), B: uint8(bb)}

	var b strings.Builder
	for row := range c.Grid {
		var run strings.Builder
		var runColor string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for col, r := range c.Grid[row] {
			hex := ""
			if r != blank {
				hex = Blend(base, c.Tint[row][col])
			} else {
				r = ' '
			}
			if hex != runColor {
				flush()
				runColor = hex
			}
			run.WriteRune(r)
		}
		flush()
		if row < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Lit counts cells holding at least one dot or glyph.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				n++
			}
		}
	}
	return n
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
