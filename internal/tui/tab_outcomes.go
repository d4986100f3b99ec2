package tui

import (
	"fmt"
	"strings"

	"grantwatch/internal/metrics"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) viewOutcomes(width, height int) string {
	outcomesW := width * 2 / 3
	if outcomesW < 40 {
		outcomesW = 40
	}
	demoW := width - outcomesW

	limit := height - 4
	if limit < 5 {
		limit = 5
	}

	outcomes := components.ContentCard("OUTCOMES  best first",
		a.renderOutcomeList(components.CardInnerWidth(outcomesW), limit), outcomesW)
	demos := components.ContentCard("PARTICIPANTS",
		a.renderDemographics(components.CardInnerWidth(demoW), limit), demoW)

	return components.CardRow([]string{outcomes, demos})
}

func (a *App) renderOutcomeList(width, limit int) string {
	t := theme.Active

	if len(a.perf) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No outcome metrics.")
	}

	grantW := 20
	labelW := 28
	barW := width - grantW - labelW - 46
	if barW < 10 {
		barW = 10
	}

	grantStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var lines []string
	for i, p := range a.perf {
		if i >= limit {
			lines = append(lines, valStyle.Render(fmt.Sprintf("… and %d more", len(a.perf)-limit)))
			break
		}

		fill := p.Achievement / 100
		if fill > 1 {
			fill = 1
		}
		status := lipgloss.NewStyle().Foreground(t.OutcomeColor(p.Status)).Background(t.Surface).
			Render(fmt.Sprintf("%-15s", p.Status))
		lines = append(lines,
			grantStyle.Render(fmt.Sprintf("%-*s", grantW, truncStr(p.GrantName, grantW)))+
				nameStyle.Render(fmt.Sprintf(" %-*s", labelW, truncStr(p.MetricName, labelW)))+
				components.ProgressBar(fill, barW)+" "+status+
				valStyle.Render(fmt.Sprintf(" %.0f / %.0f %s", p.CurrentValue, p.TargetValue, p.Unit)))
	}

	return strings.Join(lines, "\n")
}

func (a *App) renderDemographics(width, limit int) string {
	t := theme.Active

	rows := metrics.Demographics(a.ds.Participants)
	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No participants.")
	}

	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lines []string
	for i, d := range rows {
		if i >= limit {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).
				Render(fmt.Sprintf("… and %d more", len(rows)-limit)))
			break
		}
		lines = append(lines,
			countStyle.Render(fmt.Sprintf("%4d", d.Count))+" "+
				labelStyle.Render(truncStr(d.Demographic+" · "+d.AgeGroup, width-5)))
	}

	return strings.Join(lines, "\n")
}
