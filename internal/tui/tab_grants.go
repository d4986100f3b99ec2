package tui

import (
	"fmt"
	"strings"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"
	"grantwatch/internal/tui/components"
	"grantwatch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) viewGrants(width, height int) string {
	t := theme.Active

	if len(a.summaries) == 0 {
		return components.ContentCard("GRANTS",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No grants."), width)
	}

	listW := width / 3
	if listW < 24 {
		listW = 24
	}
	detailW := width - listW

	list := components.ContentCard("GRANTS  j/k to select",
		a.renderGrantList(components.CardInnerWidth(listW)), listW)
	detail := components.ContentCard("",
		a.renderGrantDetail(components.CardInnerWidth(detailW)), detailW)

	return components.CardRow([]string{list, detail})
}

func (a *App) renderGrantList(width int) string {
	t := theme.Active

	var lines []string
	for i, s := range a.summaries {
		name := truncStr(s.GrantName, width-8)
		days := cli.FormatDays(s.DaysRemaining)
		if i == a.grantCursor {
			row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true).
				Render("▸ " + name)
			lines = append(lines, row)
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.TextMuted).Render("  "+name))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render("    "+days))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderGrantDetail(width int) string {
	t := theme.Active
	s := a.summaries[a.grantCursor]

	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + valueStyle.Render(value)
	}

	var b []string
	b = append(b,
		headStyle.Render(truncStr(s.GrantName, width)),
		"",
		row("Funder", s.Funder),
		labelStyle.Render(fmt.Sprintf("%-10s", "Status"))+
			lipgloss.NewStyle().Foreground(t.GrantStatusColor(s.Status)).Render(string(s.Status)),
		row("Period", cli.FormatDate(s.StartDate)+" – "+cli.FormatDate(s.EndDate)+"  ("+cli.FormatDays(s.DaysRemaining)+")"),
		row("Budget", cli.FormatMoney(s.TotalAmount)),
		row("Spent", cli.FormatMoney(s.TotalSpent)+"  ("+cli.FormatPercent(s.SpentPercent)+")"),
		row("Remaining", cli.FormatMoney(s.RemainingBudget)),
		"",
		sectionStyle.Render("CATEGORIES"),
	)

	labelW := 22
	barW := width - labelW - 12
	if barW < 10 {
		barW = 10
	}
	for _, c := range a.ds.BudgetCategories {
		if c.GrantID != s.GrantID {
			continue
		}
		b = append(b, components.BudgetBar(c.Name, c.SpentAmount, c.BudgetedAmount, labelW, barW))
	}

	staff := metrics.StaffByGrant(a.ds.StaffAllocations, s.GrantID)
	if len(staff) > 0 {
		b = append(b, "", sectionStyle.Render("STAFF"))
		for _, sa := range staff {
			b = append(b, labelStyle.Render(fmt.Sprintf("%-22s", truncStr(sa.StaffName, 22)))+
				valueStyle.Render(fmt.Sprintf("%-24s", truncStr(sa.Role, 24)))+
				labelStyle.Render(fmt.Sprintf("%.0f%% FTE  %s", sa.FTEPercent, cli.FormatMoney(sa.SalaryAllocation))))
		}
	}

	return strings.Join(b, "\n")
}
