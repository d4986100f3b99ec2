package cmd

import (
	"fmt"

	"grantwatch/internal/config"
	"grantwatch/internal/tui"
	"grantwatch/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	Long:  "Launch the full-screen dashboard with live tabs for overview, financials, compliance, outcomes, and per-grant detail.",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, dbPath())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
