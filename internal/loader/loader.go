// Package loader orchestrates metadata retrieval: cache-first lookup, a
// pluggable row-fetch collaborator on misses, best-effort cache save, and a
// deterministic mock fallback when no live backend is usable. One
// synchronous core drives both the blocking and the asynchronous entry
// points.
package loader

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/schemascout/schemascout/internal/cache"
	"github.com/schemascout/schemascout/internal/errors"
	"github.com/schemascout/schemascout/internal/metadata"
)

// RowFetcher executes a catalog query against some backend and returns one
// column-name → value map per row. The loader treats it as opaque, possibly
// slow, and possibly failing; cancellation and timeouts are its concern via
// ctx.
type RowFetcher func(ctx context.Context, query string) ([]metadata.Row, error)

// Options selects what to load and how.
type Options struct {
	SchemaFilter string
	Limit        int
	Offset       int
	UseCache     bool
	UseMock      bool
}

// Result is what LoadAsync delivers on its channel.
type Result struct {
	Tables    []metadata.Table
	Columns   []metadata.Column
	FromCache bool
	Err       error
}

// Loader wires the fetcher, the cache, and the mock fallback together.
// Store may be nil to disable caching entirely.
type Loader struct {
	fetch RowFetcher
	store *cache.Store
}

// New returns a loader over the given collaborators.
func New(fetch RowFetcher, store *cache.Store) *Loader {
	return &Loader{fetch: fetch, store: store}
}

// Load returns all table and column descriptors for the requested scope.
// Cache hits short-circuit the fetch; fetch failures propagate unless mock
// mode replaces them with synthetic descriptors.
func (l *Loader) Load(ctx context.Context, opts Options) ([]metadata.Table, []metadata.Column, error) {
	if entry := l.cached(opts); entry != nil {
		return entry.Tables, entry.Columns, nil
	}

	return l.loadFresh(ctx, opts)
}

// LoadAsync has identical semantics to Load but never blocks the caller:
// the cache lookup stays synchronous (it is fast, local disk work) and only
// the fetch path runs on a separate goroutine. The returned channel
// delivers exactly one Result and is then closed.
func (l *Loader) LoadAsync(ctx context.Context, opts Options) <-chan Result {
	out := make(chan Result, 1)

	if entry := l.cached(opts); entry != nil {
		out <- Result{Tables: entry.Tables, Columns: entry.Columns, FromCache: true}
		close(out)

		return out
	}

	go func() {
		defer close(out)

		tables, columns, err := l.loadFresh(ctx, opts)
		out <- Result{Tables: tables, Columns: columns, Err: err}
	}()

	return out
}

// cached returns a fresh cache entry for opts, or nil.
func (l *Loader) cached(opts Options) *cache.Entry {
	if !opts.UseCache || l.store == nil {
		return nil
	}

	entry := l.store.Load(opts.SchemaFilter, opts.Limit, opts.Offset)
	if entry != nil {
		log.Debug("metadata served from cache",
			"schema", opts.SchemaFilter, "tables", len(entry.Tables), "columns", len(entry.Columns))
	}

	return entry
}

// loadFresh runs the fetch → parse → save pipeline, falling back to mock
// descriptors when the fetch fails in mock mode.
func (l *Loader) loadFresh(ctx context.Context, opts Options) ([]metadata.Table, []metadata.Column, error) {
	tables, columns, err := l.fetchAll(ctx, opts)
	if err != nil {
		if opts.UseMock {
			log.Warn("fetch failed, serving mock metadata", "err", err)

			tables = metadata.MockTables(opts.SchemaFilter, opts.Limit, opts.Offset)

			return tables, metadata.MockColumns(tables), nil
		}

		return nil, nil, errors.Wrap(err, errors.ErrTypeFetch, "metadata fetch failed")
	}

	if opts.UseCache && l.store != nil {
		l.store.Save(opts.SchemaFilter, tables, columns, opts.Limit, opts.Offset)
	}

	return tables, columns, nil
}

func (l *Loader) fetchAll(ctx context.Context, opts Options) ([]metadata.Table, []metadata.Column, error) {
	if l.fetch == nil {
		return nil, nil, errors.New(errors.ErrTypeFetch, "no row fetcher configured")
	}

	tableRows, err := l.fetch(ctx, metadata.TableQuery(opts.SchemaFilter, opts.Limit, opts.Offset))
	if err != nil {
		return nil, nil, err
	}

	columnRows, err := l.fetch(ctx, metadata.ColumnQuery(opts.SchemaFilter))
	if err != nil {
		return nil, nil, err
	}

	return metadata.TablesFromRows(tableRows), metadata.ColumnsFromRows(columnRows), nil
}
