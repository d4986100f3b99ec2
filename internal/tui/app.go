// Package tui implements the interactive grantwatch dashboard: a tabbed
// Bubble Tea app over the metrics engine with themed widgets, manual and
// timed refresh, and a first-run setup form.
package tui

import (
	"fmt"
	"strings"
	"time"

	"grantwatch/internal/config"
	"grantwatch/internal/metrics"
	"grantwatch/internal/model"
	"grantwatch/internal/store"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg carries a freshly loaded dataset, or the load failure.
type dataLoadedMsg struct {
	ds  model.Dataset
	err error
}

type tickMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	dbPath string

	cached *metrics.Cached

	ds        model.Dataset
	summaries []model.GrantSummary
	alerts    []model.Alert
	perf      []model.OutcomePerformance
	stats     model.PortfolioStats

	width  int
	height int

	activeTab   int
	showHelp    bool
	grantCursor int

	spin        spinner.Model
	loaded      bool
	loadErr     error
	loadedAt    time.Time
	refreshing  bool
	autoRefresh bool

	setup *setupModel // non-nil while the first-run form is showing
}

// NewApp builds the dashboard model. When no config file exists yet the
// first-run setup form is shown before any data loads.
func NewApp(cfg config.Config, dbPath string) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := &App{
		cfg:         cfg,
		dbPath:      dbPath,
		spin:        s,
		autoRefresh: cfg.TUI.AutoRefresh,
	}
	if !config.Exists() {
		a.setup = newSetupModel(cfg)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.setup != nil {
		return a.setup.form.Init()
	}
	return tea.Batch(a.spin.Tick, a.loadData(), tickEvery())
}

func tickEvery() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// loadData reads the database off the Update loop.
func (a *App) loadData() tea.Cmd {
	path := a.dbPath
	return func() tea.Msg {
		st, err := store.Open(path)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer st.Close()
		ds, err := st.LoadDataset()
		return dataLoadedMsg{ds: ds, err: err}
	}
}

func (a *App) cacheTTL() time.Duration {
	return time.Duration(a.cfg.TUI.CacheTTLSec) * time.Second
}

func (a *App) refreshInterval() time.Duration {
	sec := a.cfg.TUI.RefreshIntervalSec
	if sec < 5 {
		sec = 5
	}
	return time.Duration(sec) * time.Second
}

// recompute pulls the derived views out of the cached engine.
func (a *App) recompute() {
	a.summaries, a.loadErr = a.cached.GrantSummaries()
	if a.loadErr != nil {
		return
	}
	a.alerts, _ = a.cached.ComplianceAlerts()
	a.perf, _ = a.cached.OutcomePerformance()
	a.stats = metrics.PortfolioTotals(a.summaries, a.alerts, a.perf, a.ds.Participants)
	if a.grantCursor >= len(a.summaries) {
		a.grantCursor = len(a.summaries) - 1
	}
	if a.grantCursor < 0 {
		a.grantCursor = 0
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.setup != nil {
		return a.updateSetup(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case dataLoadedMsg:
		a.refreshing = false
		a.loaded = true
		if msg.err != nil {
			a.loadErr = msg.err
			return a, nil
		}
		a.ds = msg.ds
		if a.cached == nil {
			a.cached = metrics.NewCached(metrics.NewEngine(msg.ds, nil), a.cacheTTL(), nil)
		} else {
			a.cached.Replace(msg.ds)
		}
		a.recompute()
		a.loadedAt = time.Now()
		return a, nil

	case tickMsg:
		if a.autoRefresh && a.loaded && !a.refreshing && time.Since(a.loadedAt) >= a.refreshInterval() {
			a.refreshing = true
			return a, tea.Batch(a.loadData(), tickEvery())
		}
		return a, tickEvery()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "esc":
		a.showHelp = false
		return a, nil

	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "r":
		if a.loaded && !a.refreshing {
			a.refreshing = true
			return a, a.loadData()
		}
		return a, nil

	case "R":
		a.autoRefresh = !a.autoRefresh
		a.cfg.TUI.AutoRefresh = a.autoRefresh
		if config.Exists() {
			_ = config.Save(a.cfg)
		}
		return a, nil

	case "j", "down":
		if a.activeTab == tabGrants && a.grantCursor < len(a.summaries)-1 {
			a.grantCursor++
		}
		return a, nil

	case "k", "up":
		if a.activeTab == tabGrants && a.grantCursor > 0 {
			a.grantCursor--
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

func (a *App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	form, cmd := a.setup.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setup.form = f
	}

	switch a.setup.form.State {
	case huh.StateCompleted:
		cfg := a.setup.apply(a.cfg)
		_ = config.Save(cfg)
		a.cfg = cfg
		a.dbPath = cfg.DatabasePath()
		a.autoRefresh = cfg.TUI.AutoRefresh
		theme.SetActive(cfg.Appearance.Theme)
		a.spin.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)
		a.setup = nil
		return a, tea.Batch(a.spin.Tick, a.loadData(), tickEvery())
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

func (a *App) View() string {
	if a.setup != nil {
		return a.setup.form.View()
	}

	t := theme.Active

	if !a.loaded {
		msg := a.spin.View() + " Loading grant data…"
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg,
			lipgloss.WithWhitespaceBackground(t.Background))
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		msg := errStyle.Render("Failed to load data") + "\n\n" +
			hintStyle.Render(a.loadErr.Error()) + "\n\n" +
			hintStyle.Render("Run `grantwatch generate` to create a database, then press r.")
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg,
			lipgloss.WithWhitespaceBackground(t.Background))
	}

	header := a.viewHeader()
	status := components.RenderStatusBar(a.width, a.dataAge(), a.autoRefresh, a.refreshing)

	headerH := lipgloss.Height(header)
	contentH := a.height - headerH - 1
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if a.showHelp {
		content = a.viewHelp()
	} else {
		content = a.viewTab(a.width, contentH)
	}
	content = fitHeight(content, contentH)

	view := header + "\n" + content + "\n" + status
	return fillBackground(view, a.width)
}

func (a *App) viewHeader() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	title := " " + titleStyle.Render("grantwatch") + "  " +
		subStyle.Render(fmt.Sprintf("%d grants · %d alerts", a.stats.TotalGrants, a.stats.AlertCount))

	return title + "\n" + components.RenderTabBar(a.activeTab, a.width) + "\n"
}

func (a *App) viewTab(width, height int) string {
	switch a.activeTab {
	case tabOverview:
		return a.viewOverview(width, height)
	case tabFinancials:
		return a.viewFinancials(width, height)
	case tabCompliance:
		return a.viewCompliance(width, height)
	case tabOutcomes:
		return a.viewOutcomes(width, height)
	case tabGrants:
		return a.viewGrants(width, height)
	}
	return ""
}

// Tab indexes, matching components.Tabs order.
const (
	tabOverview = iota
	tabFinancials
	tabCompliance
	tabOutcomes
	tabGrants
)

func (a *App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(key, desc string) string {
		return "  " + keyStyle.Render(fmt.Sprintf("%-11s", key)) + descStyle.Render(desc)
	}

	body := strings.Join([]string{
		row("o f c u g", "jump to a tab"),
		row("tab / ←→", "cycle tabs"),
		row("j / k", "select grant (Grants tab)"),
		row("r", "reload from the database"),
		row("R", "toggle auto-refresh"),
		row("?", "toggle this help"),
		row("q", "quit"),
	}, "\n")

	w := 46
	if w > a.width-2 {
		w = a.width - 2
	}
	return "\n " + components.ContentCard("KEYS", body, w)
}

func (a *App) dataAge() string {
	if a.loadedAt.IsZero() {
		return ""
	}
	d := time.Since(a.loadedAt)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

// fitHeight pads or truncates s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// fillBackground extends every line to the full width with the theme
// background so the terminal's own background never shows through.
func fillBackground(s string, width int) string {
	bg := lipgloss.NewStyle().Background(theme.Active.Background)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		w := lipgloss.Width(l)
		if w < width {
			lines[i] = l + bg.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

func truncStr(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return string(r[:1])
	}
	return string(r[:w-1]) + "…"
}
