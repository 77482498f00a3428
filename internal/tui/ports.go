package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// teaClock adapts field.Clock to Bubble Tea: a requested frame is held until
// the next frameMsg arrives.
type teaClock struct {
	interval time.Duration
	pending  func()
}

func newTeaClock(fps int) *teaClock {
	if fps <= 0 {
		fps = 60
	}
	return &teaClock{interval: time.Second / time.Duration(fps)}
}

func (c *teaClock) RequestFrame(callback func()) {
	c.pending = callback
}

func (c *teaClock) fire() bool {
	cb := c.pending
	if cb == nil {
		return false
	}
	c.pending = nil
	cb()
	return true
}

func (c *teaClock) tick() tea.Cmd {
	return tea.Tick(c.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// mousePointer adapts mouse motion to field.PointerSource.
type mousePointer struct {
	handler func(x, y float64)
}

func (p *mousePointer) OnMove(handler func(x, y float64)) {
	p.handler = handler
}

func (p *mousePointer) move(x, y float64) {
	if p.handler != nil {
		p.handler(x, y)
	}
}
