// Package console implements the portfolio's toy command console: a line
// goes in, a few lines of text come out.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/synapse/internal/config"
)

const maxScrollback = 200

// ErrExit is returned by Execute when the user asked to leave.
var ErrExit = errors.New("console: exit requested")

// Line is one line of scrollback.
type Line struct {
	Text  string
	Input bool
	Error bool
}

// Handler runs one command. args excludes the command name.
type Handler func(c *Console, args []string) ([]string, error)

type command struct {
	help string
	run  Handler
}

// Console keeps scrollback and history for one session.
type Console struct {
	Prompt string

	profile    config.Profile
	commands   map[string]command
	scrollback []Line
	history    []string
	cursor     int
	now        func() time.Time
	onTheme    func(name string) error
}

func New(profile config.Profile) *Console {
	c := &Console{
		Prompt:  "visitor@synapse:~$ ",
		profile: profile,
		now:     time.Now,
	}
	c.commands = map[string]command{
		"help":     {"list commands", cmdHelp},
		"hello":    {"say hi", cmdHello},
		"hack":     {"try it", cmdHack},
		"about":    {"who I am", cmdAbout},
		"skills":   {"what I work with", cmdSkills},
		"projects": {"things I built", cmdProjects},
		"contact":  {"how to reach me", cmdContact},
		"whoami":   {"who you are", cmdWhoami},
		"date":     {"current time", cmdDate},
		"echo":     {"print arguments", cmdEcho},
		"history":  {"previous commands", cmdHistory},
		"clear":    {"clear the screen", cmdClear},
		"theme":    {"switch colour theme", cmdTheme},
		"sudo":     {"try it", cmdSudo},
		"exit":     {"close the console", cmdExit},
	}
	c.write(Line{Text: "Welcome. Type 'help' to see available commands."})
	return c
}

// OnTheme installs the callback used by the theme command.
func (c *Console) OnTheme(fn func(name string) error) {
	c.onTheme = fn
}

// Register adds or replaces a command.
func (c *Console) Register(name, help string, h Handler) {
	c.commands[name] = command{help: help, run: h}
}

// Execute runs one input line and appends its echo and output to the
// scrollback. Only ErrExit is returned; command failures become error lines.
func (c *Console) Execute(input string) error {
	input = strings.TrimSpace(input)
	c.write(Line{Text: c.Prompt + input, Input: true})
	if input == "" {
		return nil
	}
	c.history = append(c.history, input)
	c.cursor = len(c.history)

	fields := strings.Fields(input)
	name := strings.ToLower(fields[0])
	cmd, ok := c.commands[name]
	if !ok {
		c.write(Line{Text: fmt.Sprintf("command not found: %s. Type \"help\" for available commands.", fields[0]), Error: true})
		return nil
	}
	out, err := cmd.run(c, fields[1:])
	for _, l := range out {
		c.write(Line{Text: l})
	}
	if errors.Is(err, ErrExit) {
		return err
	}
	if err != nil {
		c.write(Line{Text: err.Error(), Error: true})
	}
	return nil
}

func (c *Console) write(l Line) {
	c.scrollback = append(c.scrollback, l)
	if len(c.scrollback) > maxScrollback {
		c.scrollback = c.scrollback[len(c.scrollback)-maxScrollback:]
	}
}

// Scrollback returns a copy of the visible lines.
func (c *Console) Scrollback() []Line {
	out := make([]Line, len(c.scrollback))
	copy(out, c.scrollback)
	return out
}

// Previous and Next walk the command history like a shell.
func (c *Console) Previous() string {
	if len(c.history) == 0 {
		return ""
	}
	if c.cursor > 0 {
		c.cursor--
	}
	return c.history[c.cursor]
}

func (c *Console) Next() string {
	if c.cursor < len(c.history)-1 {
		c.cursor++
		return c.history[c.cursor]
	}
	c.cursor = len(c.history)
	return ""
}

func (c *Console) Commands() []string {
	names := make([]string, 0, len(c.commands))
	for n := range c.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func cmdHelp(c *Console, _ []string) ([]string, error) {
	out := []string{"Available commands:"}
	for _, n := range c.Commands() {
		out = append(out, fmt.Sprintf("  %-10s %s", n, c.commands[n].help))
	}
	return out, nil
}

func cmdHello(_ *Console, _ []string) ([]string, error) {
	return []string{`Hello! Welcome to my portfolio. Try typing "hack" for a surprise!`}, nil
}

func cmdHack(_ *Console, _ []string) ([]string, error) {
	return []string{
		"Achievement Unlocked: Curious Mind!",
		"",
		"You found the secret console! The best discoveries come from curiosity.",
		"",
		"Bonus fact: the network behind this page is fifty points and one loop.",
		"Sometimes the simplest solutions are the most elegant.",
		"",
		`Try "skills" or "contact" for more info!`,
	}, nil
}

func cmdAbout(c *Console, _ []string) ([]string, error) {
	out := []string{c.profile.Name}
	if len(c.profile.Roles) > 0 {
		out = append(out, strings.Join(c.profile.Roles, " · "))
	}
	if i := c.profile.SectionIndex("about"); i >= 0 {
		out = append(out, c.profile.Sections[i].Lines...)
	}
	return out, nil
}

func cmdSkills(c *Console, _ []string) ([]string, error) {
	if len(c.profile.Skills) == 0 {
		return []string{"no skills listed"}, nil
	}
	return []string{strings.Join(c.profile.Skills, ", ")}, nil
}

func cmdProjects(c *Console, _ []string) ([]string, error) {
	var out []string
	for _, p := range c.profile.Projects {
		out = append(out, fmt.Sprintf("%-12s %s", p.Name, p.Description))
		if p.URL != "" {
			out = append(out, "             "+p.URL)
		}
	}
	return out, nil
}

func cmdContact(c *Console, _ []string) ([]string, error) {
	var out []string
	for _, l := range c.profile.Contact {
		out = append(out, fmt.Sprintf("%-8s %s", l.Label, l.URL))
	}
	return out, nil
}

func cmdWhoami(_ *Console, _ []string) ([]string, error) {
	return []string{"visitor"}, nil
}

func cmdDate(c *Console, _ []string) ([]string, error) {
	return []string{c.now().Format(time.RFC1123)}, nil
}

func cmdEcho(_ *Console, args []string) ([]string, error) {
	return []string{strings.Join(args, " ")}, nil
}

func cmdHistory(c *Console, _ []string) ([]string, error) {
	out := make([]string, len(c.history))
	for i, h := range c.history {
		out[i] = fmt.Sprintf("%4d  %s", i+1, h)
	}
	return out, nil
}

func cmdClear(c *Console, _ []string) ([]string, error) {
	c.scrollback = c.scrollback[:0]
	return nil, nil
}

func cmdTheme(c *Console, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: theme <name>")
	}
	if c.onTheme == nil {
		return nil, errors.New("themes are not available here")
	}
	if err := c.onTheme(args[0]); err != nil {
		return nil, err
	}
	return []string{"theme set to " + args[0]}, nil
}

func cmdSudo(_ *Console, _ []string) ([]string, error) {
	return nil, errors.New("visitor is not in the sudoers file. This incident will be reported.")
}

func cmdExit(_ *Console, _ []string) ([]string, error) {
	return []string{"bye"}, ErrExit
}
