package cmd

import (
	"fmt"

	"grantwatch/internal/cli"

	"github.com/spf13/cobra"
)

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Per-grant financial summary",
	RunE:  runGrants,
}

func init() {
	rootCmd.AddCommand(grantsCmd)
}

func runGrants(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle("GRANT SUMMARIES"))
	fmt.Println()

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.GrantID,
			s.GrantName,
			string(s.Status),
			cli.FormatMoney(s.TotalAmount),
			cli.FormatMoney(s.TotalSpent),
			cli.FormatMoney(s.RemainingBudget),
			cli.StyleSpentPercent(s.SpentPercent),
			cli.FormatDays(s.DaysRemaining),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Grant", "Status", "Total", "Spent", "Remaining", "Spent %", "Timeline"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, s := range summaries {
		fmt.Printf("  %-28s %s\n", s.GrantName, cli.RenderProgressBar(s.TotalSpent, s.TotalAmount, 30))
	}
	fmt.Println()

	return nil
}
