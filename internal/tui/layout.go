package tui

import (
	"github.com/san-kum/synapse/internal/config"
	"github.com/san-kum/synapse/internal/effects"
)

const (
	headerRows     = 5 // blank, name, typewriter, nav, separator
	consoleRows    = 10
	sectionMargin  = 2
	skillThreshold = 0.3
)

// page is the scrollable content flattened into rows. Every row belongs to
// one section (for the nav) and one reveal item.
type page struct {
	lines  []pageLine
	tops   []int
	spans  []effects.Span
	titles []string
}

type pageLine struct {
	text    string
	section int
	item    int
	title   bool
}

// buildPage lays the sections out one after another. A "skills" section
// without lines of its own lists the profile's skills, each revealed on its
// own.
func buildPage(p config.Profile) page {
	var pg page
	for i, s := range p.Sections {
		top := len(pg.lines)
		item := len(pg.spans)
		pg.tops = append(pg.tops, top)
		pg.titles = append(pg.titles, s.Title)
		pg.spans = append(pg.spans, effects.Span{Top: top, Margin: sectionMargin})

		add := func(text string, item int, title bool) {
			pg.lines = append(pg.lines, pageLine{text: text, section: i, item: item, title: title})
		}
		add("## "+s.Title, item, true)
		add("", item, false)
		if s.ID == "skills" && len(s.Lines) == 0 {
			for _, skill := range p.Skills {
				pg.spans = append(pg.spans, effects.Span{
					Top:       len(pg.lines),
					Height:    1,
					Threshold: skillThreshold,
					Stagger:   effects.DefaultStagger,
				})
				add("▸ "+skill, len(pg.spans)-1, false)
			}
		}
		for _, l := range s.Lines {
			add(l, item, false)
		}
		add("", item, false)
		add("", item, false)
		pg.spans[item].Height = len(pg.lines) - top
	}
	return pg
}

// activeSection is the last section whose title is at or above the top of
// the viewport. Before the first title it is the first section.
func activeSection(tops []int, offset int) int {
	active := 0
	for i, top := range tops {
		if top <= offset {
			active = i
		}
	}
	return active
}

// scrollLimit is the largest offset that still fills the viewport.
func scrollLimit(lines, viewport int) int {
	if lines <= viewport {
		return 0
	}
	return lines - viewport
}
