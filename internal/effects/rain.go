package effects

import "math/rand"

const (
	rainTrailLen       = 12
	DefaultRainDensity = 0.02
)

var rainGlyphs = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノ0123456789ABCDEF")

// Rain is the falling-character overlay. Each column drops a head that
// leaves a fading trail behind it.
type Rain struct {
	Density float64 // chance per idle column per step to start a drop

	columns []rainCol
	rows    int
	rng     *rand.Rand
}

type rainCol struct {
	active bool
	headY  float64 // fractional row position of the falling head
	speed  float64
	chars  []rune
}

// RainCell is one lit cell of the overlay. Fade is 1 at the head and falls
// towards 0 along the trail.
type RainCell struct {
	Col, Row int
	Glyph    rune
	Fade     float64
}

func NewRain(rng *rand.Rand) *Rain {
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &Rain{Density: DefaultRainDensity, rng: rng}
}

func (r *Rain) randomGlyph() rune {
	return rainGlyphs[r.rng.Intn(len(rainGlyphs))]
}

// Resize re-seeds every column when the grid changes.
func (r *Rain) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 1 {
		rows = 1
	}
	r.rows = rows
	if len(r.columns) == cols {
		return
	}
	r.columns = make([]rainCol, cols)
	for i := range r.columns {
		r.columns[i].chars = make([]rune, rainTrailLen)
		for j := range r.columns[i].chars {
			r.columns[i].chars[j] = r.randomGlyph()
		}
	}
}

// Step advances every drop by one frame.
func (r *Rain) Step() {
	for c := range r.columns {
		col := &r.columns[c]
		if !col.active {
			if r.rng.Float64() < r.Density {
				col.active = true
				col.headY = 0
				col.speed = 0.2 + r.rng.Float64()*0.6
				for j := range col.chars {
					col.chars[j] = r.randomGlyph()
				}
			}
			continue
		}
		col.headY += col.speed
		col.chars[0] = r.randomGlyph()
		// Deactivate when trail has fully passed the bottom
		if int(col.headY)-rainTrailLen > r.rows {
			col.active = false
		}
	}
}

// Cells lists the visible glyphs of the overlay.
func (r *Rain) Cells() []RainCell {
	var cells []RainCell
	for c := range r.columns {
		col := &r.columns[c]
		if !col.active {
			continue
		}
		head := int(col.headY)
		for t := 0; t < rainTrailLen; t++ {
			row := head - t
			if row < 0 || row >= r.rows {
				continue
			}
			cells = append(cells, RainCell{
				Col:   c,
				Row:   row,
				Glyph: col.chars[t%len(col.chars)],
				Fade:  1 - float64(t)/rainTrailLen,
			})
		}
	}
	return cells
}

// Active counts columns with a drop in flight.
func (r *Rain) Active() int {
	n := 0
	for _, c := range r.columns {
		if c.active {
			n++
		}
	}
	return n
}
