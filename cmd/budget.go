package cmd

import (
	"fmt"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget vs actual by category",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	ds := eng.Dataset()

	spend, err := metrics.SpendByCategory(ds.BudgetCategories, ds.Grants)
	if err != nil {
		return err
	}
	if len(spend) == 0 {
		fmt.Println("\n  No budget categories found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET VS ACTUAL"))
	fmt.Println()

	rows := make([][]string, 0, len(spend))
	lastGrant := ""
	for _, r := range spend {
		if lastGrant != "" && r.GrantName != lastGrant {
			rows = append(rows, []string{"---"})
		}
		lastGrant = r.GrantName
		rows = append(rows, []string{
			r.GrantName,
			r.Category,
			cli.FormatMoney(r.Budgeted),
			cli.FormatMoney(r.Spent),
			cli.FormatMoney(r.Remaining),
			cli.StyleSpentPercent(r.SpentPercent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Grant", "Category", "Budgeted", "Spent", "Remaining", "Spent %"},
		Rows:    rows,
	}))

	return nil
}
