// Package theme defines color themes for the splitsnap TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color
	Red           lipgloss.Color
	Pink          lipgloss.Color
	Amber         lipgloss.Color
	Purple        lipgloss.Color
}

// Chart returns the category color cycle for this theme.
func (t Theme) Chart() []lipgloss.Color {
	return []lipgloss.Color{t.Accent, t.Pink, t.Green, t.Amber, t.Purple}
}

// Active is the currently selected theme.
var Active = SnapDark

// SnapDark is the default theme, matching the web dashboard palette.
var SnapDark = Theme{
	Name:         "snap-dark",
	Background:   lipgloss.Color("#0f172a"),
	Surface:      lipgloss.Color("#1e293b"),
	SurfaceHover: lipgloss.Color("#334155"),
	Border:       lipgloss.Color("#334155"),
	BorderAccent: lipgloss.Color("#6366f1"),
	TextDim:      lipgloss.Color("#475569"),
	TextMuted:    lipgloss.Color("#94a3b8"),
	TextPrimary:  lipgloss.Color("#f8fafc"),
	Accent:       lipgloss.Color("#6366f1"),
	AccentBright: lipgloss.Color("#818cf8"),
	Green:        lipgloss.Color("#10b981"),
	Red:          lipgloss.Color("#ef4444"),
	Pink:         lipgloss.Color("#ec4899"),
	Amber:        lipgloss.Color("#f59e0b"),
	Purple:       lipgloss.Color("#8b5cf6"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Red:          lipgloss.Color("#D14D41"),
	Pink:         lipgloss.Color("#CE5D97"),
	Amber:        lipgloss.Color("#D0A215"),
	Purple:       lipgloss.Color("#8B7EC8"),
}

// Terminal uses ANSI 16 colors only for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Pink:         lipgloss.Color("5"),
	Amber:        lipgloss.Color("3"),
	Purple:       lipgloss.Color("13"),
}

// All available themes.
var All = []Theme{SnapDark, FlexokiDark, Terminal}

// ByName returns a theme by its name, defaulting to SnapDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return SnapDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
