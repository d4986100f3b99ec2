package cmd

import (
	"fmt"

	"grantwatch/internal/config"
	"grantwatch/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if err := tui.RunSetup(); err != nil {
		return err
	}
	fmt.Printf("  Configuration written to %s\n", config.ConfigPath())
	return nil
}
