package tui

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/synapse/internal/config"
	"github.com/san-kum/synapse/internal/console"
	"github.com/san-kum/synapse/internal/effects"
	"github.com/san-kum/synapse/internal/field"
	"github.com/san-kum/synapse/internal/metrics"
	"github.com/san-kum/synapse/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the portfolio page: the field fills the screen and everything
// else is stamped on top of it each frame.
type Model struct {
	cfg    *config.Config
	theme  viz.Theme
	canvas *viz.Canvas
	anim   *field.Animator
	clock  *teaClock
	mouse  *mousePointer
	frames *metrics.Frames

	typer  *effects.Typewriter
	titles []*effects.Typewriter
	rain   *effects.Rain
	reveal *effects.Reveal
	scroll *effects.Scroller
	page   page

	cons        *console.Console
	input       textinput.Model
	consoleOpen bool
	rainOn      bool
	showStats   bool

	width, height int
	lastFrame     time.Time
}

// New builds the page from cfg. The animator is started immediately; frames
// arrive once the program runs.
func New(cfg *config.Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m := &Model{
		cfg:    cfg,
		theme:  viz.GetTheme(cfg.Display.Theme),
		canvas: viz.NewCanvas(defaultWidth, defaultHeight),
		clock:  newTeaClock(cfg.Display.FPS),
		mouse:  &mousePointer{},
		frames: metrics.NewFrames(metrics.DefaultCapacity),
		typer:  effects.NewTypewriter(cfg.Profile.Roles),
		rain:   effects.NewRain(rand.New(rand.NewSource(rng.Int63()))),
		scroll: effects.NewScroller(cfg.Display.FPS),
		page:   buildPage(cfg.Profile),
		cons:   console.New(cfg.Profile),
		rainOn: cfg.Effects.Rain,
	}
	m.canvas.UnitsPerDot = cfg.Display.UnitsPerDot
	m.rain.Density = cfg.Effects.RainDensity
	m.reveal = effects.NewReveal(cfg.Display.FPS, m.page.spans)
	for i, title := range m.page.titles {
		tw := effects.NewTypewriter([]string{"## " + title})
		tw.StartDelay = time.Duration(i) * effects.DefaultStagger
		m.titles = append(m.titles, tw)
	}

	params := cfg.FieldParams()
	params.NodeColor, params.EdgeColor = m.theme.NodeColor(), m.theme.EdgeColor()
	anim, err := field.New(m.canvas, m.clock, params, rng)
	if err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}
	m.anim = anim
	m.anim.Attach(m.mouse)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	m.input = ti
	m.cons.OnTheme(m.applyTheme)

	m.resize(defaultWidth, defaultHeight)
	m.anim.Start()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.clock.tick(), tea.SetWindowTitle(m.cfg.Profile.Name))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		if m.consoleOpen {
			return m.consoleKey(msg)
		}
		return m.pageKey(msg)
	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.clock.tick()
	}
	if m.consoleOpen {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize gives the field a fresh generation sized to the terminal.
func (m *Model) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	m.width, m.height = cols, rows
	u := m.canvas.UnitsPerDot
	m.anim.Resize(float64(cols*2)*u, float64(rows*4)*u)
	m.rain.Resize(cols, rows)
	m.scroll.SetLimit(scrollLimit(len(m.page.lines), m.viewportRows()))
	m.input.Width = max(cols-len(m.cons.Prompt)-6, 1)
	log.Printf("resize %dx%d generation=%d", cols, rows, m.anim.Generation())
}

func (m *Model) viewportRows() int {
	rows := m.height - headerRows
	if m.consoleOpen {
		rows -= consoleRows
	}
	return max(rows, 1)
}

// handleMouse feeds motion to the field in field units (cell centre) and
// turns the wheel into scrolling.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll.ScrollBy(-3)
		return
	case tea.MouseButtonWheelDown:
		m.scroll.ScrollBy(3)
		return
	}
	u := m.canvas.UnitsPerDot
	m.mouse.move(float64(msg.X*2+1)*u, float64(msg.Y*4+2)*u)
}

func (m *Model) pageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		m.scroll.ScrollBy(1)
	case "up", "k":
		m.scroll.ScrollBy(-1)
	case "pgdown", " ":
		m.scroll.ScrollBy(m.viewportRows())
	case "pgup":
		m.scroll.ScrollBy(-m.viewportRows())
	case "g", "home":
		m.scroll.ScrollTo(0)
	case "G", "end":
		m.scroll.ScrollTo(len(m.page.lines))
	case "r":
		m.rainOn = !m.rainOn
	case "t":
		m.applyTheme(viz.NextTheme(m.theme.Name).Name)
	case "s":
		m.showStats = !m.showStats
	case "`", "~":
		m.setConsole(true)
		return m, textinput.Blink
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.page.tops) {
				m.scroll.ScrollTo(m.page.tops[i])
			}
		}
	}
	return m, nil
}

func (m *Model) consoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "`":
		m.setConsole(false)
		return m, nil
	case "enter":
		line := m.input.Value()
		m.input.Reset()
		if err := m.cons.Execute(line); errors.Is(err, console.ErrExit) {
			m.setConsole(false)
		}
		return m, nil
	case "up":
		m.input.SetValue(m.cons.Previous())
		m.input.CursorEnd()
		return m, nil
	case "down":
		m.input.SetValue(m.cons.Next())
		m.input.CursorEnd()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setConsole(open bool) {
	m.consoleOpen = open
	if open {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.scroll.SetLimit(scrollLimit(len(m.page.lines), m.viewportRows()))
}

func (m *Model) applyTheme(name string) error {
	if !viz.HasTheme(name) {
		return fmt.Errorf("unknown theme: %s (available: %s)", name, strings.Join(viz.ThemeNames(), ", "))
	}
	m.theme = viz.GetTheme(name)
	m.anim.SetColors(m.theme.NodeColor(), m.theme.EdgeColor())
	log.Printf("theme %s", name)
	return nil
}

// frame advances every effect, runs the animator's pending frame and then
// composites the overlays onto the freshly rendered canvas.
func (m *Model) frame(now time.Time) {
	elapsed := m.clock.interval
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if m.cfg.Effects.Typewriter {
		m.typer.Advance(elapsed)
		for _, tw := range m.titles {
			tw.Advance(elapsed)
		}
	}
	if m.rainOn {
		m.rain.Step()
	}
	m.scroll.Step()
	if m.cfg.Effects.Reveal {
		m.reveal.Observe(m.scroll.Offset(), m.viewportRows())
		m.reveal.Step()
	}

	start := time.Now()
	if m.clock.fire() {
		m.frames.Observe(m.anim, time.Since(start))
	}
	m.composite()
}

func (m *Model) composite() {
	if m.rainOn {
		for _, c := range m.rain.Cells() {
			m.canvas.Stamp(c.Col, c.Row, c.Glyph, viz.ToField(m.theme.Rain, 0.15+0.6*c.Fade))
		}
	}
	m.stampHeader()
	m.stampPage()
	if m.showStats {
		m.stampStats()
	}
	if m.consoleOpen {
		m.stampConsole()
	}
}

func (m *Model) stampText(col, row int, s string, tint field.Color) int {
	for _, r := range s {
		m.canvas.Stamp(col, row, r, tint)
		col++
	}
	return col
}

func (m *Model) stampHeader() {
	text := viz.ToField(m.theme.Text, 1)
	accent := viz.ToField(m.theme.Accent, 1)
	muted := viz.ToField(m.theme.Muted, 1)

	m.stampText(2, 1, m.cfg.Profile.Name, text)
	if m.cfg.Effects.Typewriter {
		col := m.stampText(2, 2, m.typer.Text(), accent)
		if m.typer.CursorVisible() {
			m.canvas.Stamp(col, 2, '▌', accent)
		}
	}

	active := activeSection(m.page.tops, m.scroll.Offset())
	col := 2
	for i, title := range m.page.titles {
		tint := muted
		label := fmt.Sprintf(" %d %s ", i+1, title)
		if i == active {
			tint = accent
			label = fmt.Sprintf("[%d %s]", i+1, title)
		}
		col = m.stampText(col, 3, label, tint) + 1
	}
	m.stampText(2, 4, strings.Repeat("─", max(m.width-4, 0)), muted)
}

func (m *Model) stampPage() {
	rows := m.viewportRows()
	offset := m.scroll.Offset()
	for r := 0; r < rows; r++ {
		idx := offset + r
		if idx >= len(m.page.lines) {
			break
		}
		line := m.page.lines[idx]
		if line.text == "" {
			continue
		}
		opacity, shift := 1.0, 0
		if m.cfg.Effects.Reveal {
			if !m.reveal.Revealed(line.item) {
				continue
			}
			opacity, shift = m.reveal.Opacity(line.item), m.reveal.Offset(line.item)
		}
		row := headerRows + r + shift
		if row >= headerRows+rows {
			continue
		}
		base, text := m.theme.Text, line.text
		if line.title {
			base = m.theme.Accent
			if m.cfg.Effects.Typewriter {
				text = m.titles[line.section].Text()
			}
		}
		m.stampText(4, row, text, viz.ToField(base, opacity))
	}
}

func (m *Model) stampStats() {
	series := m.frames.DurationSeries()
	if len(series) < 2 {
		return
	}
	if len(series) > 60 {
		series = series[len(series)-60:]
	}
	edges, took := m.frames.Mean()
	lines := []string{fmt.Sprintf("nodes %d  edges %.0f  frame %s", len(m.anim.Nodes()), edges, took.Round(time.Microsecond))}
	lines = append(lines, strings.Split(asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("frame ms")), "\n")...)
	lines = append(lines, "edges "+viz.SparklineChart(m.frames.EdgeSeries(), 30))

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	col := max(m.width-width-2, 0)
	muted := viz.ToField(m.theme.Muted, 1)
	for i, l := range lines {
		m.stampText(col, 1+i, l, muted)
	}
}

func (m *Model) stampConsole() {
	top := m.height - consoleRows
	text := viz.ToField(m.theme.Text, 1)
	accent := viz.ToField(m.theme.Accent, 1)
	errTint := viz.ToField(m.theme.Error, 1)
	muted := viz.ToField(m.theme.Muted, 1)

	for c := 0; c < m.width; c++ {
		for r := top; r < m.height; r++ {
			m.canvas.Stamp(c, r, ' ', field.Color{})
		}
	}
	m.stampText(0, top, strings.Repeat("─", m.width), muted)

	lines := m.cons.Scrollback()
	visible := consoleRows - 2
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	for i, l := range lines {
		tint := text
		switch {
		case l.Error:
			tint = errTint
		case l.Input:
			tint = accent
		}
		m.stampText(1, top+1+i, l.Text, tint)
	}
	col := m.stampText(1, m.height-1, m.cons.Prompt, accent)
	col = m.stampText(col, m.height-1, m.input.Value(), text)
	m.canvas.Stamp(col, m.height-1, '▌', accent)
}

func (m *Model) View() string {
	return m.canvas.Render(m.theme.Background)
}

// Run starts the full-screen program with mouse motion reporting.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
