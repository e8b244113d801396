package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemascout/schemascout/internal/match"
)

var listColumns bool

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List loaded tables or columns, optionally fuzzy-filtered",
	Long: `List all loaded table or column descriptors in catalog order. With a
pattern argument, only entries whose name fuzzy-matches the pattern are
shown: substring, word-prefix, one-typo, and subsequence matches all count.

Examples:
  schemascout list
  schemascout list usrtbl
  schemascout list --columns created`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	addSourceFlags(listCmd)
	listCmd.Flags().BoolVar(&listColumns, "columns", false, "List columns instead of tables")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	ldr, closer, err := newLoader()
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	ctx, cancel := sourceContext(cmd.Context())
	defer cancel()

	tables, columns, err := ldr.Load(ctx, loadOptions())
	if err != nil {
		return err
	}

	shown := 0

	if listColumns {
		for _, c := range columns {
			if !match.Fuzzy(c.FullName(), pattern) {
				continue
			}

			fmt.Printf("%s  %s\n", c.FullName(), c.TypeName)
			shown++
		}
	} else {
		for _, t := range tables {
			if !match.Fuzzy(t.FullName(), pattern) {
				continue
			}

			fmt.Println(t.FullName())
			shown++
		}
	}

	if shown == 0 {
		fmt.Println("Nothing to list.")
	}

	return nil
}
