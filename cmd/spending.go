package cmd

import (
	"fmt"
	"time"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"

	"github.com/spf13/cobra"
)

var spendingCmd = &cobra.Command{
	Use:   "spending",
	Short: "Monthly spending trend (trailing 12 months)",
	RunE:  runSpending,
}

func init() {
	rootCmd.AddCommand(spendingCmd)
}

func runSpending(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	ds := eng.Dataset()

	monthly := metrics.MonthlySpending(ds.Expenses, ds.Grants, time.Now())
	if len(monthly) == 0 {
		fmt.Println("\n  No expenses in the last 12 months.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY SPENDING  Last 12mo"))
	fmt.Println()

	months, totals := metrics.MonthlyTotals(monthly)
	fmt.Printf("  Trend: %s\n\n", cli.RenderSparkline(totals))

	rows := make([][]string, 0, len(months))
	var max float64
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	for i, m := range months {
		change := ""
		if i > 0 {
			change = cli.FormatDelta(totals[i], totals[i-1])
		}
		rows = append(rows, []string{
			cli.FormatMonth(m),
			cli.FormatMoney(totals[i]),
			change,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Spent", "Change"},
		Rows:    rows,
	}))

	fmt.Println()
	for i, m := range months {
		fmt.Println(cli.RenderHorizontalBar(cli.FormatMonth(m), totals[i], max, 40))
	}
	fmt.Println()

	return nil
}
