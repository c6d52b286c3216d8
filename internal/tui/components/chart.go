package components

import (
	"strings"

	"splitsnap/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// CategoryBars renders the spending breakdown as horizontal share bars,
// the terminal stand-in for the dashboard's pie chart. format renders a
// bucket total for display.
func CategoryBars(buckets []model.CategoryTotal, total float64, width int, format func(float64) string) string {
	if len(buckets) == 0 {
		return ""
	}

	labelW := 0
	for _, b := range buckets {
		if len(b.Category) > labelW {
			labelW = len(b.Category)
		}
	}
	if labelW > 16 {
		labelW = 16
	}

	barW := width - labelW - 16
	if barW < 10 {
		barW = 10
	}

	var out strings.Builder
	for i, b := range buckets {
		share := 0.0
		if total > 0 {
			share = b.Total / total
		}
		label := b.Category
		if len(label) > labelW {
			label = string([]rune(label)[:labelW-1]) + "…"
		}
		out.WriteString(ShareBar(i, label, format(b.Total), share, labelW, barW))
		if i < len(buckets)-1 {
			out.WriteString("\n")
		}
	}

	return out.String()
}
