package tui

import (
	"fmt"
	"strings"

	"grantwatch/internal/cli"
	"grantwatch/internal/model"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) viewOverview(width, height int) string {
	t := theme.Active

	cards := []struct{ Label, Value, Delta string }{
		{"Total Funding", cli.FormatMoney(a.stats.TotalFunding),
			fmt.Sprintf("%d of %d active", a.stats.ActiveGrants, a.stats.TotalGrants)},
		{"Total Spent", cli.FormatMoney(a.stats.TotalSpent),
			cli.FormatMoney(a.stats.RemainingBudget) + " left"},
		{"Utilization", cli.FormatPercent(a.stats.UtilizationPct), ""},
		{"Alerts", fmt.Sprintf("%d", a.stats.AlertCount), ""},
		{"Outcomes", cli.FormatPercent(a.stats.AvgAchievement),
			fmt.Sprintf("%d/%d on track", a.stats.MetricsOnTrack, a.stats.MetricsTotal)},
	}
	top := components.MetricCardRow(cards, width)

	halves := components.LayoutRow(width, 2)

	alertsBody := a.renderTopAlerts(components.CardInnerWidth(halves[0]), 5)
	endingBody := a.renderEndingSoon(components.CardInnerWidth(halves[1]))

	bottom := components.CardRow([]string{
		components.ContentCard("TOP ALERTS", alertsBody, halves[0]),
		components.ContentCard(fmt.Sprintf("ENDING WITHIN %dd", a.cfg.General.EndingSoonDays), endingBody, halves[1]),
	})

	partStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	participants := partStyle.Render(fmt.Sprintf(" %s participants served across the portfolio",
		cli.FormatNumber(int64(a.stats.ParticipantCount))))

	return top + "\n" + bottom + "\n" + participants
}

func (a *App) renderTopAlerts(width, limit int) string {
	t := theme.Active
	if len(a.alerts) == 0 {
		return lipgloss.NewStyle().Foreground(t.Green).Render("No compliance alerts.")
	}

	grants := a.ds.GrantByID()
	var lines []string
	for i, al := range a.alerts {
		if i >= limit {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).
				Render(fmt.Sprintf("… and %d more", len(a.alerts)-limit)))
			break
		}
		sevStyle := lipgloss.NewStyle().Foreground(t.AlertColor(al.Type))
		nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		line := sevStyle.Render(fmt.Sprintf("%-10s", alertSeverityText(al))) + " " +
			nameStyle.Render(truncStr(grants[al.GrantID].Name+" · "+al.ItemName, width-11))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderEndingSoon(width int) string {
	t := theme.Active

	var lines []string
	for _, s := range a.summaries {
		if s.DaysRemaining < 0 || s.DaysRemaining > a.cfg.General.EndingSoonDays {
			continue
		}
		daysStyle := lipgloss.NewStyle().Foreground(t.Orange)
		nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		lines = append(lines, daysStyle.Render(fmt.Sprintf("%4dd", s.DaysRemaining))+" "+
			nameStyle.Render(truncStr(s.GrantName, width-14))+" "+
			lipgloss.NewStyle().Foreground(t.TextDim).Render(cli.FormatMoney(s.RemainingBudget)))
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No grants ending soon.")
	}
	return strings.Join(lines, "\n")
}

// alertSeverityText renders the alert's severity in its native unit.
func alertSeverityText(a model.Alert) string {
	if a.Type == model.AlertBudgetOverspent {
		return fmt.Sprintf("%.0f%% over", a.PercentOver)
	}
	return fmt.Sprintf("%dd overdue", a.DaysOverdue)
}
