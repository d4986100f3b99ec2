package tui

import (
	"grantwatch/internal/config"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupModel wraps the first-run configuration form.
type setupModel struct {
	form *huh.Form

	dbPath      string
	themeName   string
	autoRefresh bool
}

func newSetupModel(cfg config.Config) *setupModel {
	m := &setupModel{
		dbPath:      cfg.DatabasePath(),
		themeName:   cfg.Appearance.Theme,
		autoRefresh: cfg.TUI.AutoRefresh,
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Database path").
				Description("Where the SQLite grant database lives.").
				Value(&m.dbPath),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&m.themeName),
			huh.NewConfirm().
				Title("Auto-refresh the dashboard?").
				Value(&m.autoRefresh),
		),
	)
	return m
}

// apply copies the form answers onto the config.
func (m *setupModel) apply(cfg config.Config) config.Config {
	cfg.General.DatabasePath = m.dbPath
	cfg.Appearance.Theme = m.themeName
	cfg.TUI.AutoRefresh = m.autoRefresh
	return cfg
}

// RunSetup runs the configuration form standalone and saves the result.
// Backs the `grantwatch setup` command.
func RunSetup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m := newSetupModel(cfg)
	if err := m.form.Run(); err != nil {
		return err
	}

	return config.Save(m.apply(cfg))
}
