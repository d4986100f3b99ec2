package tui

import (
	"fmt"
	"strings"
	"time"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"
	"grantwatch/internal/model"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) viewCompliance(width, height int) string {
	halves := components.LayoutRow(width, 2)

	maxRows := height - 4
	if maxRows < 5 {
		maxRows = 5
	}

	alerts := components.ContentCard("ALERTS",
		a.renderAlertList(components.CardInnerWidth(halves[0]), maxRows), halves[0])
	board := components.ContentCard("DELIVERABLES",
		a.renderDeliverableBoard(components.CardInnerWidth(halves[1]), maxRows), halves[1])

	return components.CardRow([]string{alerts, board})
}

func (a *App) renderAlertList(width, limit int) string {
	t := theme.Active
	if len(a.alerts) == 0 {
		return lipgloss.NewStyle().Foreground(t.Green).Render("All clear.")
	}

	grants := a.ds.GrantByID()
	typeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lines []string
	for i, al := range a.alerts {
		if i >= limit {
			lines = append(lines, typeStyle.Render(fmt.Sprintf("… and %d more", len(a.alerts)-limit)))
			break
		}
		sev := lipgloss.NewStyle().Foreground(t.AlertColor(al.Type)).Render(fmt.Sprintf("%-10s", alertSeverityText(al)))
		lines = append(lines,
			sev+" "+typeStyle.Render(string(al.Type))+"\n"+
				"           "+nameStyle.Render(truncStr(grants[al.GrantID].Name+" · "+al.ItemName, width-11)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderDeliverableBoard(width, limit int) string {
	t := theme.Active

	board := metrics.DeliverableBoard(a.ds.Deliverables, a.ds.Grants, time.Now())
	if len(board) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No deliverables.")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	overdue := 0
	for _, d := range board {
		if d.Status == model.DeliverableOverdue {
			overdue++
		}
	}

	var lines []string
	if overdue > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("%d overdue", overdue)))
	}
	for i, d := range board {
		if i >= limit {
			lines = append(lines, dateStyle.Render(fmt.Sprintf("… and %d more", len(board)-limit)))
			break
		}
		status := lipgloss.NewStyle().Foreground(t.DeliverableColor(d.Status)).
			Render(fmt.Sprintf("%-11s", d.Status))
		late := ""
		if d.DaysLate > 0 {
			late = lipgloss.NewStyle().Foreground(t.Red).Render(fmt.Sprintf(" +%dd", d.DaysLate))
		}
		lines = append(lines,
			dateStyle.Render(cli.FormatDate(d.DueDate))+" "+status+
				nameStyle.Render(truncStr(d.Name, width-28))+late)
	}
	return strings.Join(lines, "\n")
}
