// Package ui provides the visual styling for the Lattice terminal client.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	lightBackground = lipgloss.Color("#f6f7f9")
	lightForeground = lipgloss.Color("#182235")
	lightPrimary    = lipgloss.Color("#1d3a8f") // Lattice blue
	lightAccent     = lipgloss.Color("#0fb5a6") // teal
	lightMuted      = lipgloss.Color("#8a93a6")
	lightBorder     = lipgloss.Color("#d7dbe3")
	lightCard       = lipgloss.Color("#ffffff")

	// Dark mode colors
	darkBackground = lipgloss.Color("#131a26")
	darkForeground = lipgloss.Color("#e8ebf1")
	darkPrimary    = lipgloss.Color("#7aa2ff")
	darkAccent     = lipgloss.Color("#2dd4bf")
	darkMuted      = lipgloss.Color("#5b6678")
	darkBorder     = lipgloss.Color("#2b3547")
	darkCard       = lipgloss.Color("#1b2536")

	// Semantic colors, same in both modes
	ColorDestructive = lipgloss.Color("#e5484d")
	ColorSuccess     = lipgloss.Color("#46a758")
	ColorWarning     = lipgloss.Color("#f5a623")
	ColorInfo        = lipgloss.Color("#3b82f6")
)

// Theme holds the active color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: lightBackground,
		Foreground: lightForeground,
		Primary:    lightPrimary,
		Accent:     lightAccent,
		Muted:      lightMuted,
		Border:     lightBorder,
		Card:       lightCard,
	}
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: darkBackground,
		Foreground: darkForeground,
		Primary:    darkPrimary,
		Accent:     darkAccent,
		Muted:      darkMuted,
		Border:     darkBorder,
		Card:       darkCard,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme name ("light", "dark" or "auto").
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return detectTheme()
	}
}

// detectTheme guesses the terminal background from COLORFGBG, defaulting
// to dark (most terminal setups).
func detectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// Format is "foreground;background"; ANSI backgrounds 7 and 15 are light.
		parts := strings.Split(colorTerm, ";")
		if len(parts) >= 2 {
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
				if bg == 7 || bg == 15 {
					return LightTheme()
				}
				return DarkTheme()
			}
		}
	}
	return DarkTheme()
}

// Styles holds the styled components used by the chat views and renderers.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Prompt    lipgloss.Style
	UserInput lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Badge   lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ColorDestructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(detectTheme())
}

// PlainStyles returns an uncolored style set for non-TTY output (the
// one-shot query command piping into a file or another program).
func PlainStyles() Styles {
	return Styles{}
}

// RenderDivider returns a horizontal rule of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
