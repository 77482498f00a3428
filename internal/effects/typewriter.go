package effects

import "time"

const (
	DefaultTypeDelay  = 50 * time.Millisecond
	DefaultHoldDelay  = 3 * time.Second
	DefaultPauseDelay = 3 * time.Second
	DefaultStagger    = 100 * time.Millisecond
	cursorPeriod      = 530 * time.Millisecond
)

type typePhase int

const (
	phaseTyping typePhase = iota
	phaseHolding
	phaseDeleting
	phasePausing
)

// Typewriter types a phrase rune by rune, holds it, clears it and moves on
// to the next phrase, forever. A single phrase is retyped.
type Typewriter struct {
	TypeDelay time.Duration
	// DeleteDelay is the time per deleted rune; zero clears the phrase at once.
	DeleteDelay time.Duration
	HoldDelay   time.Duration
	PauseDelay  time.Duration
	// StartDelay holds the first rune back, to stagger several typewriters.
	StartDelay time.Duration

	phrases [][]rune
	index   int
	shown   int
	phase   typePhase
	wait    time.Duration
	clock   time.Duration
}

func NewTypewriter(phrases []string) *Typewriter {
	tw := &Typewriter{
		TypeDelay:  DefaultTypeDelay,
		HoldDelay:  DefaultHoldDelay,
		PauseDelay: DefaultPauseDelay,
	}
	for _, p := range phrases {
		if p != "" {
			tw.phrases = append(tw.phrases, []rune(p))
		}
	}
	return tw
}

// Advance moves the effect forward by elapsed wall time.
func (t *Typewriter) Advance(elapsed time.Duration) {
	before := t.clock
	t.clock += elapsed
	if len(t.phrases) == 0 || t.clock <= t.StartDelay {
		return
	}
	t.wait += t.clock - max(before, t.StartDelay)
	for {
		delay := t.delay()
		if t.wait < delay {
			return
		}
		t.wait -= delay
		t.step()
	}
}

func (t *Typewriter) delay() time.Duration {
	var d time.Duration
	switch t.phase {
	case phaseTyping:
		d = t.TypeDelay
	case phaseHolding:
		d = t.HoldDelay
	case phaseDeleting:
		d = t.DeleteDelay
	default:
		d = t.PauseDelay
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

func (t *Typewriter) step() {
	phrase := t.phrases[t.index]
	switch t.phase {
	case phaseTyping:
		t.shown++
		if t.shown >= len(phrase) {
			t.shown = len(phrase)
			t.phase = phaseHolding
		}
	case phaseHolding:
		t.phase = phaseDeleting
		if t.DeleteDelay <= 0 {
			t.shown = 0
			t.phase = phasePausing
		}
	case phaseDeleting:
		t.shown--
		if t.shown <= 0 {
			t.shown = 0
			t.phase = phasePausing
		}
	case phasePausing:
		t.index = (t.index + 1) % len(t.phrases)
		t.phase = phaseTyping
	}
}

// Text is the visible part of the current phrase.
func (t *Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string(t.phrases[t.index][:t.shown])
}

// Phrase is the index of the phrase being typed.
func (t *Typewriter) Phrase() int { return t.index }

// CursorVisible blinks the caret on a fixed period.
func (t *Typewriter) CursorVisible() bool {
	return (t.clock/cursorPeriod)%2 == 0
}
