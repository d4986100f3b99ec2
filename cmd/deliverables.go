package cmd

import (
	"fmt"
	"time"

	"grantwatch/internal/cli"
	"grantwatch/internal/metrics"
	"grantwatch/internal/model"

	"github.com/spf13/cobra"
)

var flagUpcoming int

var deliverablesCmd = &cobra.Command{
	Use:   "deliverables",
	Short: "Deliverable status board",
	RunE:  runDeliverables,
}

func init() {
	deliverablesCmd.Flags().IntVar(&flagUpcoming, "upcoming", 0, "Only show unfinished deliverables due within N days")
	rootCmd.AddCommand(deliverablesCmd)
}

func runDeliverables(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	ds := eng.Dataset()
	now := time.Now()

	if flagUpcoming > 0 {
		horizon := time.Duration(flagUpcoming) * 24 * time.Hour
		upcoming := metrics.UpcomingDeliverables(ds.Deliverables, now, horizon)
		if len(upcoming) == 0 {
			fmt.Printf("\n  Nothing due in the next %d days.\n", flagUpcoming)
			return nil
		}

		grants := ds.GrantByID()
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("DUE WITHIN %dd", flagUpcoming)))
		fmt.Println()
		rows := make([][]string, 0, len(upcoming))
		for _, d := range upcoming {
			rows = append(rows, []string{
				cli.FormatDate(d.DueDate),
				grants[d.GrantID].Name,
				d.Name,
				string(d.Status),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Due", "Grant", "Deliverable", "Status"},
			Rows:    rows,
		}))
		return nil
	}

	board := metrics.DeliverableBoard(ds.Deliverables, ds.Grants, now)
	if len(board) == 0 {
		fmt.Println("\n  No deliverables found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DELIVERABLES"))
	fmt.Println()

	rows := make([][]string, 0, len(board))
	for _, d := range board {
		late := ""
		if d.DaysLate > 0 {
			late = fmt.Sprintf("%dd", d.DaysLate)
		}
		rows = append(rows, []string{
			cli.FormatDate(d.DueDate),
			d.GrantName,
			d.Name,
			string(d.Status),
			late,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Due", "Grant", "Deliverable", "Status", "Late"},
		Rows:    rows,
	}))

	overdue := 0
	for _, d := range board {
		if d.Status == model.DeliverableOverdue {
			overdue++
		}
	}
	if overdue > 0 {
		fmt.Printf("\n  %d deliverables overdue.\n", overdue)
	}

	return nil
}
