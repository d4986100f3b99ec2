package cmd

import (
	"fmt"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"
	"grantwatch/internal/model"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Portfolio overview with top alerts",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}

	summaries, err := eng.GrantSummaries()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("\n  No grants found.")
		return nil
	}

	perf, err := eng.OutcomePerformance()
	if err != nil {
		return err
	}
	alerts := eng.ComplianceAlerts()
	stats := metrics.PortfolioTotals(summaries, alerts, perf, eng.Dataset().Participants)

	fmt.Println()
	fmt.Println(cli.RenderTitle("GRANT PORTFOLIO"))
	fmt.Println()

	rows := [][]string{
		{"Grants", fmt.Sprintf("%d (%d active)", stats.TotalGrants, stats.ActiveGrants)},
		{"Total Funding", cli.FormatMoney(stats.TotalFunding)},
		{"Total Spent", cli.FormatMoney(stats.TotalSpent)},
		{"Utilization", cli.FormatPercent(stats.UtilizationPct)},
		{"---"},
		{"Compliance Alerts", cli.FormatNumber(int64(stats.AlertCount))},
		{"Metrics On Track", fmt.Sprintf("%d / %d", stats.MetricsOnTrack, stats.MetricsTotal)},
		{"Avg Achievement", cli.FormatPercent(stats.AvgAchievement)},
		{"Participants", cli.FormatNumber(int64(stats.ParticipantCount))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(alerts) > 0 {
		top := alerts
		if len(top) > 5 {
			top = top[:5]
		}
		alertRows := make([][]string, 0, len(top))
		for _, a := range top {
			alertRows = append(alertRows, []string{
				string(a.Type), a.GrantID, a.ItemName, alertSeverity(a),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Alerts",
			Headers: []string{"Type", "Grant", "Item", "Severity"},
			Rows:    alertRows,
		}))
	}

	return nil
}

// alertSeverity renders the severity field appropriate to the alert type.
func alertSeverity(a model.Alert) string {
	if a.Type == model.AlertBudgetOverspent {
		return cli.FormatPercent(a.PercentOver) + " over"
	}
	return fmt.Sprintf("%dd overdue", a.DaysOverdue)
}
