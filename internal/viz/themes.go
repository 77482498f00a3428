package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/synapse/internal/field"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Node       lipgloss.Color
	Edge       lipgloss.Color
	Rain       lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeNeural = Theme{
		Name:       "neural",
		Node:       lipgloss.Color("#4a4a5a"), // Slate
		Edge:       lipgloss.Color("#5a5a6a"),
		Rain:       lipgloss.Color("#00ff88"),
		Accent:     lipgloss.Color("#64ffda"),
		Background: lipgloss.Color("#0a192f"),
		Text:       lipgloss.Color("#ccd6f6"),
		Muted:      lipgloss.Color("#8892b0"),
		Error:      lipgloss.Color("#ff5f56"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Node:       lipgloss.Color("#00ff00"), // Green phosphor
		Edge:       lipgloss.Color("#00cc00"),
		Rain:       lipgloss.Color("#88ff88"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Node:       lipgloss.Color("#ffffff"),
		Edge:       lipgloss.Color("#cccccc"),
		Rain:       lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Node:       lipgloss.Color("#00a8cc"), // Ocean blue
		Edge:       lipgloss.Color("#0077be"),
		Rain:       lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Node:       lipgloss.Color("#feca57"),
		Edge:       lipgloss.Color("#ff6b6b"), // Coral
		Rain:       lipgloss.Color("#ff9ff3"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Error:      lipgloss.Color("#ff4757"),
	}

	// All available themes
	Themes = []Theme{
		ThemeNeural,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to neural.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeural
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NodeColor and EdgeColor convert the theme for the animator.
func (t Theme) NodeColor() field.Color {
	return ToField(t.Node, field.DefaultNodeColor.A)
}

func (t Theme) EdgeColor() field.Color {
	return ToField(t.Edge, field.DefaultMaxEdgeOpacity)
}

// ToField converts a hex colour to a field colour with opacity a.
func ToField(c lipgloss.Color, a float64) field.Color {
	r, g, b := parseHex(string(c))
	return field.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: a}
}

// Blend composites c over bg using c's opacity and returns a hex colour.
func Blend(bg, c field.Color) string {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	mix := func(x, y uint8) int {
		return int(float64(x) + (float64(y)-float64(x))*a + 0.5)
	}
	return hexColor(mix(bg.R, c.R), mix(bg.G, c.G), mix(bg.B, c.B))
}
