package cmd

import (
	"fmt"

	"grantwatch/internal/cli"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Compliance alerts, most severe first",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}

	alerts := eng.ComplianceAlerts()
	if len(alerts) == 0 {
		fmt.Println("\n  No compliance alerts. All clear.")
		return nil
	}

	grants := eng.Dataset().GrantByID()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COMPLIANCE ALERTS  %d open", len(alerts))))
	fmt.Println()

	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		name := a.GrantID
		if g, ok := grants[a.GrantID]; ok {
			name = g.Name
		}
		rows = append(rows, []string{
			string(a.Type),
			name,
			a.ItemName,
			alertSeverity(a),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Type", "Grant", "Item", "Severity"},
		Rows:    rows,
	}))

	return nil
}
