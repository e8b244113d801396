package loader

import (
	"context"
	"database/sql"

	"github.com/schemascout/schemascout/internal/errors"
	"github.com/schemascout/schemascout/internal/metadata"
)

// SQLFetcher adapts a database/sql handle into a RowFetcher. The driver is
// the caller's choice; the CLI registers sqlite and duckdb.
func SQLFetcher(db *sql.DB) RowFetcher {
	return func(ctx context.Context, query string) ([]metadata.Row, error) {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeDatabase, "catalog query failed")
		}
		defer rows.Close()

		names, err := rows.Columns()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeDatabase, "reading result columns failed")
		}

		var result []metadata.Row

		for rows.Next() {
			values := make([]any, len(names))
			scan := make([]any, len(names))

			for i := range values {
				scan[i] = &values[i]
			}

			if err := rows.Scan(scan...); err != nil {
				return nil, errors.Wrap(err, errors.ErrTypeDatabase, "scanning catalog row failed")
			}

			row := make(metadata.Row, len(names))
			for i, name := range names {
				row[name] = values[i]
			}

			result = append(result, row)
		}

		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeDatabase, "iterating catalog rows failed")
		}

		return result, nil
	}
}
