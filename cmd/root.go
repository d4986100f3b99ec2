// Package cmd implements the grantwatch CLI commands.
package cmd

import (
	"fmt"
	"os"

	"grantwatch/internal/config"
	"grantwatch/internal/metrics"
	"grantwatch/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagGrant string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "grantwatch",
	Short: "Grant compliance analytics CLI",
	Long:  "Track nonprofit grant budgets, compliance deadlines, and program outcomes.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Database path (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagGrant, "grant", "g", "", "Filter to grant (name or ID substring)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dbPath resolves the database location: flag first, then config, then the
// XDG default.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	cfg, _ := config.Load()
	return cfg.DatabasePath()
}

// loadEngine is the shared data loading path used by all read commands. It
// opens the database, pulls the full dataset into memory, and applies the
// --grant filter.
func loadEngine() (*metrics.Engine, error) {
	path := dbPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no database at %s (run `grantwatch generate` first)", path)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading %s\n", path)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	n, err := st.GrantCount()
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("database at %s is empty (run `grantwatch generate` first)", path)
	}

	ds, err := st.LoadDataset()
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	if flagGrant != "" {
		ds = metrics.FilterByGrant(ds, flagGrant)
	}
	return metrics.NewEngine(ds, nil), nil
}
