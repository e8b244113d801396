package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemascout/schemascout/internal/intern"
	"github.com/schemascout/schemascout/internal/search"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active configuration and search engine",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	engine := search.Select(cfg.Search.Accelerated, intern.NewPool())
	stats := engine.Stats()

	fmt.Printf("Search engine:  %s\n", stats.Engine)
	fmt.Printf("Database:       driver=%s dsn=%q\n", cfg.Database.Driver, cfg.Database.DSN)
	fmt.Printf("Cache:          enabled=%t dir=%s ttl=%dh\n",
		cfg.Cache.Enabled, cfg.Cache.Directory, cfg.Cache.TTLHours)
	fmt.Printf("Mock mode:      %t\n", cfg.Mock.Enabled)
	fmt.Printf("Logging:        level=%s format=%s\n", cfg.Logging.Level, cfg.Logging.Format)

	return nil
}
