package console

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/synapse/internal/config"
)

func last(c *Console) Line {
	sb := c.Scrollback()
	return sb[len(sb)-1]
}

func TestExecuteKnownCommands(t *testing.T) {
	c := New(config.DefaultProfile())
	tests := []struct {
		input    string
		contains string
	}{
		{"whoami", "visitor"},
		{"echo hello  world", "hello world"},
		{"skills", "Go"},
		{"contact", "github"},
		{"HELP", "Available commands:"},
		{"hello", `Try typing "hack" for a surprise!`},
		{"hack", "Achievement Unlocked: Curious Mind!"},
	}
	for _, tt := range tests {
		before := len(c.Scrollback())
		if err := c.Execute(tt.input); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.input, err)
		}
		var out []string
		for _, l := range c.Scrollback()[before+1:] {
			out = append(out, l.Text)
		}
		if !strings.Contains(strings.Join(out, "\n"), tt.contains) {
			t.Errorf("%s: expected output containing %q, got %q", tt.input, tt.contains, out)
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Execute("rm -rf /")
	l := last(c)
	if !l.Error || l.Text != `command not found: rm. Type "help" for available commands.` {
		t.Errorf("expected not found error, got %+v", l)
	}
}

func TestSudoIsAnError(t *testing.T) {
	c := New(config.DefaultProfile())
	if err := c.Execute("sudo make me a sandwich"); err != nil {
		t.Fatal(err)
	}
	if !last(c).Error {
		t.Error("expected error line")
	}
}

func TestClearAndEcho(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Execute("echo a")
	c.Execute("clear")
	if len(c.Scrollback()) != 0 {
		t.Errorf("expected empty scrollback, got %d lines", len(c.Scrollback()))
	}
	c.Execute("")
	if len(c.Scrollback()) != 1 || !last(c).Input {
		t.Error("empty input should only echo the prompt")
	}
}

func TestHistoryNavigation(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Execute("echo one")
	c.Execute("echo two")

	if got := c.Previous(); got != "echo two" {
		t.Errorf("expected echo two, got %q", got)
	}
	if got := c.Previous(); got != "echo one" {
		t.Errorf("expected echo one, got %q", got)
	}
	if got := c.Previous(); got != "echo one" {
		t.Errorf("expected to stay at oldest, got %q", got)
	}
	if got := c.Next(); got != "echo two" {
		t.Errorf("expected echo two, got %q", got)
	}
	if got := c.Next(); got != "" {
		t.Errorf("expected empty line past newest, got %q", got)
	}
}

func TestThemeCommand(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Execute("theme ocean")
	if !last(c).Error {
		t.Error("theme without callback should fail")
	}

	var got string
	c.OnTheme(func(name string) error {
		if name == "bogus" {
			return errors.New("unknown theme: bogus")
		}
		got = name
		return nil
	})
	c.Execute("theme ocean")
	if got != "ocean" {
		t.Errorf("expected ocean, got %q", got)
	}
	c.Execute("theme bogus")
	if l := last(c); !l.Error || l.Text != "unknown theme: bogus" {
		t.Errorf("expected theme error, got %+v", l)
	}
}

func TestExitAndDate(t *testing.T) {
	c := New(config.DefaultProfile())
	c.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	c.Execute("date")
	if !strings.Contains(last(c).Text, "02 Jan 2024") {
		t.Errorf("unexpected date output %q", last(c).Text)
	}
	if err := c.Execute("exit"); !errors.Is(err, ErrExit) {
		t.Errorf("expected ErrExit, got %v", err)
	}
}

func TestScrollbackIsBounded(t *testing.T) {
	c := New(config.DefaultProfile())
	for i := 0; i < maxScrollback; i++ {
		c.Execute("echo x")
	}
	if len(c.Scrollback()) != maxScrollback {
		t.Errorf("expected %d lines, got %d", maxScrollback, len(c.Scrollback()))
	}
}

func TestHelpListsEasterEggs(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Execute("help")
	var out []string
	for _, l := range c.Scrollback() {
		out = append(out, l.Text)
	}
	joined := strings.Join(out, "\n")
	for _, name := range []string{"hello", "hack", "skills", "contact", "clear", "exit"} {
		if !strings.Contains(joined, "  "+name) {
			t.Errorf("help should list %s", name)
		}
	}
}

func TestRegisterCommand(t *testing.T) {
	c := New(config.DefaultProfile())
	c.Register("ping", "answer pong", func(_ *Console, args []string) ([]string, error) {
		return []string{"pong " + strings.Join(args, " ")}, nil
	})
	c.Execute("ping a b")
	if got := last(c).Text; got != "pong a b" {
		t.Errorf("expected pong a b, got %q", got)
	}
	found := false
	for _, n := range c.Commands() {
		if n == "ping" {
			found = true
		}
	}
	if !found {
		t.Error("registered command should be listed")
	}
}
