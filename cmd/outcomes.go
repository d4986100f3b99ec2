package cmd

import (
	"fmt"

	"grantwatch/internal/cli"

	"github.com/spf13/cobra"
)

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "Outcome metric performance against targets",
	RunE:  runOutcomes,
}

func init() {
	rootCmd.AddCommand(outcomesCmd)
}

func runOutcomes(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}

	perf, err := eng.OutcomePerformance()
	if err != nil {
		return err
	}
	if len(perf) == 0 {
		fmt.Println("\n  No outcome metrics found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OUTCOME PERFORMANCE"))
	fmt.Println()

	rows := make([][]string, 0, len(perf))
	for _, p := range perf {
		rows = append(rows, []string{
			p.GrantName,
			p.MetricName,
			fmt.Sprintf("%.0f %s", p.TargetValue, p.Unit),
			fmt.Sprintf("%.0f", p.CurrentValue),
			cli.FormatPercent(p.Achievement),
			cli.StyleOutcome(p.Status),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Grant", "Metric", "Target", "Current", "Achievement", "Status"},
		Rows:    rows,
	}))

	return nil
}
