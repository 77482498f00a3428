package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/synapse/internal/config"
	"github.com/san-kum/synapse/internal/effects"
)

func TestBuildPage(t *testing.T) {
	p := config.DefaultProfile()
	pg := buildPage(p)
	if len(pg.tops) != len(p.Sections) || len(pg.titles) != len(p.Sections) {
		t.Fatalf("expected one top and title per section")
	}
	for i, top := range pg.tops {
		line := pg.lines[top]
		if !line.title || line.section != i {
			t.Errorf("section %d: top should be its title line", i)
		}
		if pg.spans[line.item].Top != top {
			t.Errorf("section %d: span top %d, want %d", i, pg.spans[line.item].Top, top)
		}
		if pg.spans[line.item].Margin != sectionMargin {
			t.Errorf("section %d: expected bottom margin %d", i, sectionMargin)
		}
	}
	last := pg.lines[len(pg.lines)-1]
	span := pg.spans[last.item]
	if span.Top+span.Height != len(pg.lines) {
		t.Error("spans should cover every line")
	}
}

func TestBuildPageSkills(t *testing.T) {
	p := config.DefaultProfile()
	pg := buildPage(p)
	var skills []pageLine
	for _, l := range pg.lines {
		if l.section == p.SectionIndex("skills") && strings.HasPrefix(l.text, "▸ ") {
			skills = append(skills, l)
		}
	}
	if len(skills) != len(p.Skills) {
		t.Fatalf("expected %d skill rows, got %d", len(p.Skills), len(skills))
	}
	seen := map[int]bool{}
	for i, l := range skills {
		span := pg.spans[l.item]
		if span.Threshold != skillThreshold || span.Stagger != effects.DefaultStagger || span.Height != 1 {
			t.Errorf("skill %d: unexpected span %+v", i, span)
		}
		if seen[l.item] {
			t.Errorf("skill %d: shares a reveal item", i)
		}
		seen[l.item] = true
	}
}

func TestActiveSection(t *testing.T) {
	tops := []int{0, 6, 14}
	tests := []struct {
		offset int
		want   int
	}{
		{0, 0}, {5, 0}, {6, 1}, {13, 1}, {14, 2}, {40, 2},
	}
	for _, tt := range tests {
		if got := activeSection(tops, tt.offset); got != tt.want {
			t.Errorf("offset %d: expected %d, got %d", tt.offset, tt.want, got)
		}
	}
}

func TestScrollLimit(t *testing.T) {
	if scrollLimit(10, 20) != 0 {
		t.Error("short page should not scroll")
	}
	if scrollLimit(30, 20) != 10 {
		t.Error("expected limit 10")
	}
}
