// Package cmd wires the CLI around the metadata engine: loading, searching,
// cache management, and status reporting.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/schemascout/schemascout/internal/config"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "schemascout",
	Short: "Browse and search database schema metadata",
	Long: `schemascout indexes table and column descriptors from a database catalog
and answers fuzzy, ranked search queries over them. Fetched metadata is
cached on disk so repeated runs do not re-query the backend.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loaded.ExpandAllPaths()
	cfg = loaded

	configureLogging(cfg.Logging)

	return nil
}

func configureLogging(lc config.LoggingConfig) {
	switch strings.ToLower(lc.Level) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if strings.ToLower(lc.Format) == "json" {
		log.SetFormatter(log.JSONFormatter)
	}
}
