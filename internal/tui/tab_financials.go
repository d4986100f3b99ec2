package tui

import (
	"fmt"
	"strings"
	"time"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) viewFinancials(width, height int) string {
	t := theme.Active

	chartH := height/2 - 4
	if chartH < 4 {
		chartH = 4
	}

	monthly := metrics.MonthlySpending(a.ds.Expenses, a.ds.Grants, time.Now())
	months, totals := metrics.MonthlyTotals(monthly)

	var chartBody string
	if len(totals) == 0 {
		chartBody = lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses in the last 12 months.")
	} else {
		labels := make([]string, len(months))
		for i, m := range months {
			labels[i] = m.Format("Jan")
		}
		chartBody = components.BarChart(totals, labels, t.Accent, components.CardInnerWidth(width), chartH)
	}
	chart := components.ContentCard("MONTHLY SPENDING  Last 12mo", chartBody, width)

	bars := components.ContentCard("BUDGET BY GRANT", a.renderGrantBudgets(components.CardInnerWidth(width)), width)

	return chart + "\n" + bars
}

func (a *App) renderGrantBudgets(width int) string {
	t := theme.Active
	if len(a.summaries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No grants.")
	}

	labelW := 28
	barW := width - labelW - 28
	if barW < 10 {
		barW = 10
	}

	var lines []string
	for _, s := range a.summaries {
		line := components.BudgetBar(s.GrantName, s.TotalSpent, s.TotalAmount, labelW, barW) +
			lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
				Render(fmt.Sprintf("  %s / %s", cli.FormatMoney(s.TotalSpent), cli.FormatMoney(s.TotalAmount)))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
