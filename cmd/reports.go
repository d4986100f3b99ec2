package cmd

import (
	"fmt"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Funder report schedule and submission status",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	ds := eng.Dataset()

	timeline := metrics.ReportTimeline(ds.Reports, ds.Grants)
	if len(timeline) == 0 {
		fmt.Println("\n  No reports found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FUNDER REPORTS"))
	fmt.Println()

	rows := make([][]string, 0, len(timeline))
	for _, r := range timeline {
		submitted := ""
		if r.SubmissionDate != nil {
			submitted = cli.FormatDate(*r.SubmissionDate)
		}
		rows = append(rows, []string{
			cli.FormatDate(r.DueDate),
			r.GrantName,
			r.Type,
			string(r.Status),
			submitted,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Due", "Grant", "Type", "Status", "Submitted"},
		Rows:    rows,
	}))

	return nil
}
