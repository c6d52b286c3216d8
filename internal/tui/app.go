// Package tui provides the interactive Bubble Tea dashboard for splitsnap.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"splitsnap/internal/config"
	"splitsnap/internal/model"
	"splitsnap/internal/pay"
	"splitsnap/internal/render"
	"splitsnap/internal/splitapi"
	"splitsnap/internal/store"
	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SheetMsg is sent when a balance fetch completes.
type SheetMsg struct {
	Sheet   model.BalanceSheet
	Err     error
	Elapsed time.Duration
}

// GroupCreatedMsg is sent when the first-run group form submits.
type GroupCreatedMsg struct {
	Group model.Group
	Err   error
}

// ExpenseAddedMsg is sent when an expense submission completes.
type ExpenseAddedMsg struct {
	Title string
	Err   error
}

type noticeExpiredMsg struct{}

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	client  *splitapi.Client
	builder render.Builder
	sess    *store.Store // nil when --no-session is set

	// Data from the last fetch
	sheet     model.BalanceSheet
	dashboard model.Dashboard
	group     model.Group
	haveGroup bool
	loaded    bool
	loadErr   error
	loadTime  time.Duration

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	refreshing bool
	notice     string // transient status bar message

	// Per-tab state
	settleCursor int
	settings     settingsState

	// First-run group setup (huh form)
	groupForm *huh.Form
	groupVals groupValues
	needGroup bool

	// In-dashboard expense entry (huh form)
	expenseForm *huh.Form
	expenseVals expenseValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the TUI model. The roster comes from the local session
// when one exists; a nil sess disables every session write, matching the
// CLI's --no-session behavior, and shows the first-run group form.
func NewApp(cfg config.Config, sess *store.Store) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		cfg:     cfg,
		client:  splitapi.NewClient(config.ServerURL(cfg)),
		builder: newBuilder(cfg),
		sess:    sess,
		spinner: sp,
	}

	if sess != nil {
		if g, ok, err := sess.LoadGroup(); err == nil && ok {
			a.group = g
			a.haveGroup = true
		}
	}
	a.needGroup = !a.haveGroup
	// Nothing to fetch until a group exists, so skip the loading screen.
	a.loaded = a.needGroup

	return a
}

func newBuilder(cfg config.Config) render.Builder {
	return render.Builder{
		CurrencySymbol: cfg.Currency.Symbol,
		UPI: pay.UPIOptions{
			VPA:          cfg.Payment.VPA,
			CurrencyCode: cfg.Currency.Code,
		},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
	}
	if !a.needGroup {
		cmds = append(cmds, fetchSheetCmd(a.client, a.sess))
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.dashboard = a.builder.Dashboard(a.sheet)
	if a.settleCursor >= len(a.dashboard.Settlements) {
		a.settleCursor = len(a.dashboard.Settlements) - 1
	}
	if a.settleCursor < 0 {
		a.settleCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.groupForm != nil {
			a.groupForm = a.groupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.expenseForm != nil {
			a.expenseForm = a.expenseForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.groupForm != nil || a.expenseForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 1 && a.settleCursor > 0 {
				a.settleCursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == 1 && a.settleCursor < len(a.dashboard.Settlements)-1 {
				a.settleCursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case GroupCreatedMsg:
		a.groupForm = nil
		if msg.Err != nil {
			a.loaded = true
			a.notice = fmt.Sprintf("Group creation failed: %v", msg.Err)
			return a, noticeCmd()
		}
		a.group = msg.Group
		a.haveGroup = true
		a.needGroup = false
		a.loaded = false
		a.refreshing = true
		return a, tea.Batch(fetchSheetCmd(a.client, a.sess), a.spinner.Tick)

	case ExpenseAddedMsg:
		a.expenseForm = nil
		if msg.Err != nil {
			a.notice = fmt.Sprintf("Not added: %v", msg.Err)
			return a, noticeCmd()
		}
		a.notice = fmt.Sprintf("Added %q — refreshing", msg.Title)
		a.refreshing = true
		return a, tea.Batch(fetchSheetCmd(a.client, a.sess), noticeCmd())

	case SheetMsg:
		a.loaded = true
		a.refreshing = false
		a.loadTime = msg.Elapsed
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.sheet = msg.Sheet
			a.recompute()
		}
		return a, nil

	case noticeExpiredMsg:
		a.notice = ""
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to whichever form is active (cursor
	// blinks, etc.)
	if a.groupForm != nil {
		return a.updateGroupForm(msg)
	}
	if a.expenseForm != nil {
		return a.updateExpenseForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.groupForm != nil {
		return a.updateGroupForm(msg)
	}
	if a.expenseForm != nil {
		return a.updateExpenseForm(msg)
	}

	if !a.loaded {
		return a, nil
	}

	// First run: any key opens the group form
	if a.needGroup {
		a.groupForm = newGroupForm(&a.groupVals)
		if a.width > 0 {
			a.groupForm = a.groupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.groupForm.Init()
	}

	// Settings tab owns its keys while editing
	if a.activeTab == 4 && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Settle tab navigation
	if a.activeTab == 1 {
		switch key {
		case "j", "down":
			if a.settleCursor < len(a.dashboard.Settlements)-1 {
				a.settleCursor++
			}
			return a, nil
		case "k", "up":
			if a.settleCursor > 0 {
				a.settleCursor--
			}
			return a, nil
		case "enter", "p":
			return a.markSelectedPaid()
		}
	}

	// Settings tab navigation (non-editing)
	if a.activeTab == 4 {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		a.expenseVals = newExpenseValues(a.group)
		a.expenseForm = newExpenseForm(a.group, &a.expenseVals)
		if a.width > 0 {
			a.expenseForm = a.expenseForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.expenseForm.Init()
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(fetchSheetCmd(a.client, a.sess), a.spinner.Tick)
		}
		return a, nil
	case "o":
		a.activeTab = 0
	case "s":
		a.activeTab = 1
	case "b":
		a.activeTab = 2
	case "c":
		a.activeTab = 3
	case "x":
		a.activeTab = 4
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

// markSelectedPaid drops the selected settlement from the local view.
// The server recomputes the authoritative sheet on the next fetch.
func (a App) markSelectedPaid() (tea.Model, tea.Cmd) {
	idx := a.settleCursor
	if idx >= len(a.sheet.Settlements) {
		return a, nil
	}
	v := a.dashboard.Settlements[idx]

	a.sheet.Settlements = append(
		a.sheet.Settlements[:idx],
		a.sheet.Settlements[idx+1:]...)
	a.recompute()

	if a.sess != nil {
		_ = a.sess.DropSettlement(idx)
	}

	a.notice = fmt.Sprintf("Marked paid: %s", v.Title())
	return a, noticeCmd()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.groupForm != nil {
		return a.groupForm.View()
	}
	if a.expenseForm != nil {
		return a.expenseForm.View()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.needGroup {
		return a.viewNoGroup()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  splitsnap needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ splitsnap"))
	b.WriteString(subtitleStyle.Render(" · Group Expense Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Fetching balances..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewNoGroup() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := titleStyle.Render("◈ splitsnap") + "\n\n" +
		mutedStyle.Render("No group yet. Creating one wipes the server ledger.") + "\n\n" +
		mutedStyle.Render("Press any key to set up your group.")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o s b c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move through settlements"},
		{"Enter / p", "Mark settlement paid"},
		{"a", "Add an expense"},
		{"r", "Refresh from server"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	groupPillStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	groupNameStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	header := components.RenderTabBar(a.activeTab, w) +
		groupPillStyle.Render("  │ ") + groupNameStyle.Render(a.group.Name)

	notice := a.notice
	if a.loadErr != nil {
		notice = fmt.Sprintf("Server error: %v (showing last data)", a.loadErr)
	}
	statusBar := components.RenderStatusBar(w, config.ServerURL(a.cfg), notice, a.refreshing)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderSettleTab(cw)
	case 2:
		content = a.renderBalancesTab(cw)
	case 3:
		content = a.renderChartTab(cw)
	case 4:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Commands ───────────────────────────────────────────────────

func fetchSheetCmd(client *splitapi.Client, sess *store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		sheet, err := client.FetchBalances(ctx)
		if err == nil && sess != nil {
			_ = sess.SaveSheet(sheet)
		}
		return SheetMsg{Sheet: sheet, Err: err, Elapsed: time.Since(start)}
	}
}

func noticeCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
