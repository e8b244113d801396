package cmd

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/marcboeker/go-duckdb" // DuckDB driver
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/schemascout/schemascout/internal/cache"
	"github.com/schemascout/schemascout/internal/errors"
	"github.com/schemascout/schemascout/internal/loader"
)

// Source flags shared by every command that reads metadata.
var (
	flagSchema  string
	flagLimit   int
	flagOffset  int
	flagMock    bool
	flagNoCache bool
	flagDriver  string
	flagDSN     string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSchema, "schema", "", "Only load metadata for this schema")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of tables to load (0 = all)")
	cmd.Flags().IntVar(&flagOffset, "offset", 0, "Table pagination offset")
	cmd.Flags().BoolVar(&flagMock, "mock", false, "Serve synthetic metadata when no backend is reachable")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the on-disk metadata cache")
	cmd.Flags().StringVar(&flagDriver, "driver", "", "Database driver: sqlite or duckdb (default from config)")
	cmd.Flags().StringVar(&flagDSN, "dsn", "", "Database DSN or file path (default from config)")
}

// newLoader builds the loader for the current flags and config. The returned
// closer releases the database handle and may be nil in mock-only mode.
func newLoader() (*loader.Loader, func() error, error) {
	driver := cfg.Database.Driver
	if flagDriver != "" {
		driver = flagDriver
	}

	dsn := cfg.Database.DSN
	if flagDSN != "" {
		dsn = flagDSN
	}

	var (
		fetch  loader.RowFetcher
		closer func() error
	)

	if dsn != "" {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to open database")
		}

		fetch = loader.SQLFetcher(db)
		closer = db.Close
	}

	var store *cache.Store
	if cfg.Cache.Enabled && !flagNoCache {
		store = cache.NewStore(cfg.Cache.Directory, time.Duration(cfg.Cache.TTLHours)*time.Hour)
	}

	return loader.New(fetch, store), closer, nil
}

// sourceContext bounds metadata fetches by the configured query timeout.
func sourceContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout, err := time.ParseDuration(cfg.Database.QueryTimeout)
	if err != nil || timeout <= 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, timeout)
}

func loadOptions() loader.Options {
	limit := flagLimit
	if limit <= 0 && (flagMock || cfg.Mock.Enabled) {
		limit = cfg.Mock.Tables
	}

	return loader.Options{
		SchemaFilter: flagSchema,
		Limit:        limit,
		Offset:       flagOffset,
		UseCache:     cfg.Cache.Enabled && !flagNoCache,
		UseMock:      flagMock || cfg.Mock.Enabled,
	}
}
