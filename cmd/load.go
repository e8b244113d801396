package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Fetch schema metadata and warm the cache",
	Long: `Fetch table and column descriptors from the configured backend and store
them in the on-disk cache. Subsequent search commands are served from the
cache until it expires.

Examples:
  schemascout load --dsn ./catalog.db
  schemascout load --driver duckdb --dsn ./warehouse.duckdb --schema sales
  schemascout load --mock --limit 50`,
	RunE: runLoad,
}

func init() {
	addSourceFlags(loadCmd)
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx, cancel := sourceContext(cmd.Context())
	defer cancel()

	ldr, closer, err := newLoader()
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " fetching metadata..."
	s.Start()

	result := <-ldr.LoadAsync(ctx, loadOptions())

	s.Stop()

	if result.Err != nil {
		return result.Err
	}

	source := "backend"
	if result.FromCache {
		source = "cache"
	}

	fmt.Printf("Loaded %d tables and %d columns from %s\n",
		len(result.Tables), len(result.Columns), source)

	return nil
}
