package tui

import (
	"fmt"
	"strings"

	"splitsnap/internal/config"
	"splitsnap/internal/splitapi"
	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings fields, top to bottom.
const (
	settingServer = iota
	settingVPA
	settingTheme
	settingSmartTax
	settingsFieldCount
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saveErr error
}

// settingsStartEdit begins editing the selected field. Text fields open
// an input; the theme and smart-tax rows apply immediately.
func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	switch a.settings.cursor {
	case settingServer, settingVPA:
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 50
		if a.settings.cursor == settingServer {
			ti.SetValue(a.cfg.Server.BaseURL)
		} else {
			ti.SetValue(a.cfg.Payment.VPA)
		}
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		return a, a.settings.input.Cursor.BlinkCmd()

	case settingTheme:
		// Cycle to the next theme and persist
		next := 0
		for i, t := range theme.All {
			if t.Name == a.cfg.Appearance.Theme {
				next = (i + 1) % len(theme.All)
				break
			}
		}
		a.cfg.Appearance.Theme = theme.All[next].Name
		theme.SetActive(a.cfg.Appearance.Theme)
		a.settings.saveErr = config.Save(a.cfg)
		return a, nil

	case settingSmartTax:
		a.cfg.Surcharge.Enabled = !a.cfg.Surcharge.Enabled
		a.settings.saveErr = config.Save(a.cfg)
		return a, nil
	}
	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(a.settings.input.Value())
		switch a.settings.cursor {
		case settingServer:
			if value != "" {
				a.cfg.Server.BaseURL = strings.TrimRight(value, "/")
				a.client = splitapi.NewClient(config.ServerURL(a.cfg))
			}
		case settingVPA:
			if value != "" {
				a.cfg.Payment.VPA = value
				a.builder = newBuilder(a.cfg)
				a.recompute()
			}
		}
		a.settings.saveErr = config.Save(a.cfg)
		a.settings.editing = false
		return a, nil

	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	smartTax := "off"
	if a.cfg.Surcharge.Enabled {
		smartTax = fmt.Sprintf("on (+%.0f%% GST, +%.0f%% tip)",
			a.cfg.Surcharge.GSTPercent, a.cfg.Surcharge.TipPercent)
	}

	rows := []struct{ label, value string }{
		{"Server", a.cfg.Server.BaseURL},
		{"UPI VPA", a.cfg.Payment.VPA},
		{"Theme", a.cfg.Appearance.Theme},
		{"Smart tax", smartTax},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		style := labelStyle
		if i == a.settings.cursor {
			marker = "▶ "
			style = selStyle
		}

		if a.settings.editing && i == a.settings.cursor {
			fmt.Fprintf(&b, "%s%s %s\n", marker, style.Render(fmt.Sprintf("%-10s", row.label)), a.settings.input.View())
			continue
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, style.Render(fmt.Sprintf("%-10s", row.label)), valueStyle.Render(row.value))
	}

	b.WriteString("\n")
	if a.settings.editing {
		b.WriteString(dimStyle.Render("Enter saves, Esc cancels"))
	} else {
		b.WriteString(dimStyle.Render("j/k select · Enter edits text fields, cycles the rest"))
	}
	if a.settings.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("Save failed: %v", a.settings.saveErr)))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Config: " + config.Path()))

	return components.ContentCard("Settings", strings.TrimRight(b.String(), "\n"), cw)
}
