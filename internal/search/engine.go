// Package search ranks table and column descriptors against free-text
// queries. Two interchangeable engines implement the same contract: the
// reference engine built on the aggregate-key trie, and an accelerated
// engine built on patricia tries. Callers pick one via Select and treat the
// result as the search index.
package search

import (
	"github.com/charmbracelet/log"

	"github.com/schemascout/schemascout/internal/intern"
	"github.com/schemascout/schemascout/internal/metadata"
)

// Relevance tiers. Exact name matches outrank substring matches, which
// outrank remarks and word-prefix hits; ties keep insertion order.
const (
	scoreExact         = 2.0
	scoreNameSubstring = 1.0
	scoreTableRemarks  = 0.8
	scoreColumnType    = 0.7
	scoreWordPrefix    = 0.6
	scoreColumnRemarks = 0.5
)

// TableResult is one ranked table hit.
type TableResult struct {
	Table metadata.Table
	Score float64
}

// ColumnResult is one ranked column hit.
type ColumnResult struct {
	Column metadata.Column
	Score  float64
}

// Stats reports what an engine currently holds.
type Stats struct {
	Engine    string
	Tables    int
	Columns   int
	TrieNodes int
}

// Engine is the search index contract. BuildIndex replaces all prior state;
// it is not safe to run concurrently with searches, so callers rebuild into
// a fresh engine and swap. Searching an engine that was never built returns
// empty results.
type Engine interface {
	BuildIndex(tables []metadata.Table, columns []metadata.Column)
	SearchTables(query string) []TableResult
	SearchColumns(query string) []ColumnResult
	Stats() Stats
}

// Select returns the accelerated engine when it is requested and passes the
// capability probe, and the reference engine otherwise. Acceleration being
// unavailable is never an error.
func Select(accelerated bool, pool *intern.Pool) Engine {
	if accelerated && acceleratedAvailable() {
		log.Debug("search engine selected", "engine", engineAccelerated)
		return NewAcceleratedEngine(pool)
	}

	log.Debug("search engine selected", "engine", engineReference)

	return NewReferenceEngine(pool)
}
