package effects

import (
	"testing"
	"time"
)

func newTestTypewriter(phrases ...string) *Typewriter {
	tw := NewTypewriter(phrases)
	tw.TypeDelay = 10 * time.Millisecond
	tw.DeleteDelay = 5 * time.Millisecond
	tw.HoldDelay = 20 * time.Millisecond
	tw.PauseDelay = 15 * time.Millisecond
	return tw
}

func TestTypewriterCycle(t *testing.T) {
	tw := newTestTypewriter("ab", "cde")

	steps := []struct {
		advance time.Duration
		text    string
		phrase  int
	}{
		{0, "", 0},
		{10 * time.Millisecond, "a", 0},
		{10 * time.Millisecond, "ab", 0},
		{19 * time.Millisecond, "ab", 0},
		{1 * time.Millisecond, "ab", 0},
		{5 * time.Millisecond, "a", 0},
		{5 * time.Millisecond, "", 0},
		{15 * time.Millisecond, "", 1},
		{10 * time.Millisecond, "c", 1},
		{20 * time.Millisecond, "cde", 1},
	}
	for i, s := range steps {
		tw.Advance(s.advance)
		if tw.Text() != s.text {
			t.Errorf("step %d: expected %q, got %q", i, s.text, tw.Text())
		}
		if tw.Phrase() != s.phrase {
			t.Errorf("step %d: expected phrase %d, got %d", i, s.phrase, tw.Phrase())
		}
	}
}

func TestTypewriterWrapsAround(t *testing.T) {
	tw := newTestTypewriter("x")
	// type 10, hold 20, delete 5, pause 15
	tw.Advance(50 * time.Millisecond)
	if tw.Phrase() != 0 {
		t.Errorf("expected wrap to phrase 0, got %d", tw.Phrase())
	}
	tw.Advance(10 * time.Millisecond)
	if tw.Text() != "x" {
		t.Errorf("expected %q, got %q", "x", tw.Text())
	}
}

func TestTypewriterMultibyte(t *testing.T) {
	tw := newTestTypewriter("héllo")
	tw.Advance(20 * time.Millisecond)
	if tw.Text() != "hé" {
		t.Errorf("expected %q, got %q", "hé", tw.Text())
	}
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter([]string{"", ""})
	tw.Advance(time.Hour)
	if tw.Text() != "" {
		t.Errorf("expected empty text, got %q", tw.Text())
	}
}

func TestTypewriterCursorBlinks(t *testing.T) {
	tw := NewTypewriter([]string{"hello"})
	if !tw.CursorVisible() {
		t.Error("cursor should start visible")
	}
	tw.Advance(cursorPeriod)
	if tw.CursorVisible() {
		t.Error("cursor should be hidden after one period")
	}
}

func TestTypewriterDefaultCadence(t *testing.T) {
	tw := NewTypewriter([]string{"ab"})

	steps := []struct {
		advance time.Duration
		text    string
	}{
		{50 * time.Millisecond, "a"},
		{50 * time.Millisecond, "ab"},
		{3*time.Second - time.Millisecond, "ab"},
		{time.Millisecond, ""},
		{3*time.Second - time.Millisecond, ""},
		{time.Millisecond, ""},
		{50 * time.Millisecond, "a"},
	}
	for i, s := range steps {
		tw.Advance(s.advance)
		if tw.Text() != s.text {
			t.Errorf("step %d: expected %q, got %q", i, s.text, tw.Text())
		}
	}
}

func TestTypewriterStaggeredStart(t *testing.T) {
	tw := NewTypewriter([]string{"abc"})
	tw.StartDelay = 2 * DefaultStagger

	tw.Advance(200 * time.Millisecond)
	if tw.Text() != "" {
		t.Errorf("expected nothing before the start delay, got %q", tw.Text())
	}
	tw.Advance(30 * time.Millisecond)
	tw.Advance(20 * time.Millisecond)
	if tw.Text() != "a" {
		t.Errorf("expected %q, got %q", "a", tw.Text())
	}

	late := NewTypewriter([]string{"abc"})
	late.StartDelay = 100 * time.Millisecond
	late.Advance(250 * time.Millisecond)
	if late.Text() != "abc" {
		t.Errorf("time past the start delay should count, got %q", late.Text())
	}
}
