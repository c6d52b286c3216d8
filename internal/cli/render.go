package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (snap-dark)
var (
	ColorBg      = lipgloss.Color("#0f172a")
	ColorSurface = lipgloss.Color("#1e293b")
	ColorBorder  = lipgloss.Color("#334155")
	ColorTextDim = lipgloss.Color("#475569")
	ColorMuted   = lipgloss.Color("#94a3b8")
	ColorText    = lipgloss.Color("#f8fafc")
	ColorAccent  = lipgloss.Color("#6366f1")
	ColorPink    = lipgloss.Color("#ec4899")
	ColorGreen   = lipgloss.Color("#10b981")
	ColorAmber   = lipgloss.Color("#f59e0b")
	ColorPurple  = lipgloss.Color("#8b5cf6")
	ColorRed     = lipgloss.Color("#ef4444")
)

// ChartPalette is the category bar color cycle, matching the dashboard
// pie chart.
var ChartPalette = []lipgloss.Color{ColorAccent, ColorPink, ColorGreen, ColorAmber, ColorPurple}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// PositiveStyle marks members who collect money. Zero balances use
	// this style too.
	PositiveStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// NegativeStyle marks members who owe money.
	NegativeStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// CelebrateStyle is for the all-settled banner.
	CelebrateStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// RoastStyle renders the group's spending verdict.
	RoastStyle = lipgloss.NewStyle().Foreground(ColorPink).Italic(true)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderBanner renders a celebratory full-width message.
func RenderBanner(msg string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorGreen).
		Padding(0, 2)
	return box.Render(CelebrateStyle.Render(msg))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			// Right-align numeric columns (all except first)
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderHorizontalBar renders one category bar with its label and value,
// cycling the chart palette by index.
func RenderHorizontalBar(index int, label, value string, share float64, maxWidth int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	barLen := int(share * float64(maxWidth))
	if barLen == 0 && share > 0 {
		barLen = 1
	}

	color := ChartPalette[index%len(ChartPalette)]
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	track := dimStyle.Render(strings.Repeat("░", maxWidth-barLen))
	return fmt.Sprintf("  %-14s %s%s  %s %s",
		Truncate(label, 14), bar, track,
		valueStyle.Render(value),
		mutedStyle.Render(FormatPercent(share)),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
