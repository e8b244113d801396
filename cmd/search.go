package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemascout/schemascout/internal/errors"
	"github.com/schemascout/schemascout/internal/intern"
	"github.com/schemascout/schemascout/internal/search"
)

var (
	searchColumns bool
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search table and column metadata with ranked fuzzy matching",
	Long: `Search loaded schema metadata. Results are ranked: exact name matches
first, then name substrings, then remarks and word-prefix hits.

Examples:
  schemascout search user
  schemascout search --columns order_id
  schemascout search --limit 5 accounts`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	addSourceFlags(searchCmd)
	searchCmd.Flags().BoolVar(&searchColumns, "columns", false, "Search columns instead of tables")
	searchCmd.Flags().IntVar(&searchLimit, "top", 0, "Maximum results to print (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := sourceContext(cmd.Context())
	defer cancel()

	query := strings.TrimSpace(args[0])
	if query == "" {
		return errors.New(errors.ErrTypeValidation, "query string must not be empty")
	}

	ldr, closer, err := newLoader()
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	tables, columns, err := ldr.Load(ctx, loadOptions())
	if err != nil {
		return err
	}

	pool := intern.NewPool()
	engine := search.Select(cfg.Search.Accelerated, pool)
	engine.BuildIndex(tables, columns)

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.Search.Limit
	}

	if searchColumns {
		return printColumnResults(engine.SearchColumns(query), limit)
	}

	return printTableResults(engine.SearchTables(query), limit)
}

func printTableResults(results []search.TableResult, limit int) error {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if len(results) > limit {
		results = results[:limit]
	}

	for i, r := range results {
		fmt.Printf("%d. %s  (score %.1f)\n", i+1, r.Table.FullName(), r.Score)

		if r.Table.Remarks != "" {
			fmt.Printf("   %s\n", r.Table.Remarks)
		}
	}

	return nil
}

func printColumnResults(results []search.ColumnResult, limit int) error {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if len(results) > limit {
		results = results[:limit]
	}

	for i, r := range results {
		c := r.Column

		typeInfo := c.TypeName
		if c.Length > 0 {
			typeInfo = fmt.Sprintf("%s(%d)", c.TypeName, c.Length)
			if c.Scale > 0 {
				typeInfo = fmt.Sprintf("%s(%d,%d)", c.TypeName, c.Length, c.Scale)
			}
		}

		fmt.Printf("%d. %s  %s  nullable=%s  (score %.1f)\n",
			i+1, c.FullName(), typeInfo, c.Nullable, r.Score)

		if c.Remarks != "" {
			fmt.Printf("   %s\n", c.Remarks)
		}
	}

	return nil
}
