package search

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/schemascout/schemascout/internal/intern"
	"github.com/schemascout/schemascout/internal/metadata"
	"github.com/schemascout/schemascout/internal/trie"
)

const engineReference = "reference"

// ReferenceEngine is the trie-backed search index. It owns one trie for
// table names, one for tokenized table-name words, and the same pair for
// columns, plus the descriptors themselves in insertion order. The opaque
// trie key is the descriptor's position, so duplicate names across schemas
// or tables resolve to every matching descriptor.
type ReferenceEngine struct {
	pool *intern.Pool

	tableNames  *trie.Trie
	tableWords  *trie.Trie
	columnNames *trie.Trie
	columnWords *trie.Trie

	tables  []metadata.Table
	columns []metadata.Column
}

// NewReferenceEngine returns an empty engine. pool may be nil, in which case
// strings are stored as-is.
func NewReferenceEngine(pool *intern.Pool) *ReferenceEngine {
	return &ReferenceEngine{pool: pool}
}

// BuildIndex clears all prior state and indexes the given descriptors.
// Descriptors missing a name are skipped rather than failing the build.
func (e *ReferenceEngine) BuildIndex(tables []metadata.Table, columns []metadata.Column) {
	e.tableNames = trie.New()
	e.tableWords = trie.New()
	e.columnNames = trie.New()
	e.columnWords = trie.New()
	e.tables = make([]metadata.Table, 0, len(tables))
	e.columns = make([]metadata.Column, 0, len(columns))

	for _, t := range tables {
		if t.Name == "" {
			continue
		}

		t.Schema = e.intern(t.Schema)
		t.Name = e.intern(t.Name)

		key := uint32(len(e.tables))
		e.tables = append(e.tables, t)

		e.tableNames.Insert(t.Name, key)
		for _, word := range SplitWords(t.Name) {
			e.tableWords.Insert(word, key)
		}
	}

	for _, c := range columns {
		if c.Name == "" {
			continue
		}

		c.Schema = e.intern(c.Schema)
		c.Table = e.intern(c.Table)
		c.TypeName = e.intern(c.TypeName)

		key := uint32(len(e.columns))
		e.columns = append(e.columns, c)

		e.columnNames.Insert(c.Name, key)
		for _, word := range SplitWords(c.Name) {
			e.columnWords.Insert(word, key)
		}
	}

	log.Debug("index built",
		"engine", engineReference, "tables", len(e.tables), "columns", len(e.columns))
}

// SearchTables returns tables scoring > 0 against query, best first. An
// empty query returns every table in insertion order.
func (e *ReferenceEngine) SearchTables(query string) []TableResult {
	if e.tableNames == nil {
		return nil
	}

	q := Normalize(query)
	if q == "" {
		results := make([]TableResult, 0, len(e.tables))
		for _, t := range e.tables {
			results = append(results, TableResult{Table: t})
		}

		return results
	}

	candidates := make(map[uint32]struct{})
	mergeKeys(candidates, e.tableNames.SearchPrefix(q))
	mergeKeys(candidates, e.tableWords.SearchPrefix(q))

	// Substring hits in names and remarks are invisible to prefix tries
	for i, t := range e.tables {
		if strings.Contains(Normalize(t.Name), q) || strings.Contains(Normalize(t.Remarks), q) {
			candidates[uint32(i)] = struct{}{}
		}
	}

	var results []TableResult

	for i, t := range e.tables {
		if _, ok := candidates[uint32(i)]; !ok {
			continue
		}

		if score := tableScore(t, q); score > 0 {
			results = append(results, TableResult{Table: t, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// SearchColumns mirrors SearchTables over the column index.
func (e *ReferenceEngine) SearchColumns(query string) []ColumnResult {
	if e.columnNames == nil {
		return nil
	}

	q := Normalize(query)
	if q == "" {
		results := make([]ColumnResult, 0, len(e.columns))
		for _, c := range e.columns {
			results = append(results, ColumnResult{Column: c})
		}

		return results
	}

	candidates := make(map[uint32]struct{})
	mergeKeys(candidates, e.columnNames.SearchPrefix(q))
	mergeKeys(candidates, e.columnWords.SearchPrefix(q))

	for i, c := range e.columns {
		if strings.Contains(Normalize(c.Name), q) ||
			strings.Contains(Normalize(c.TypeName), q) ||
			strings.Contains(Normalize(c.Remarks), q) {
			candidates[uint32(i)] = struct{}{}
		}
	}

	var results []ColumnResult

	for i, c := range e.columns {
		if _, ok := candidates[uint32(i)]; !ok {
			continue
		}

		if score := columnScore(c, q); score > 0 {
			results = append(results, ColumnResult{Column: c, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Stats reports the index contents.
func (e *ReferenceEngine) Stats() Stats {
	s := Stats{
		Engine:  engineReference,
		Tables:  len(e.tables),
		Columns: len(e.columns),
	}

	for _, t := range []*trie.Trie{e.tableNames, e.tableWords, e.columnNames, e.columnWords} {
		if t != nil {
			s.TrieNodes += t.Len()
		}
	}

	return s
}

func (e *ReferenceEngine) intern(s string) string {
	if e.pool == nil {
		return s
	}

	return e.pool.Intern(s)
}

// tableScore assigns the relevance tier for one table against a normalized
// query: exact name, name substring, remarks substring, then word prefix.
func tableScore(t metadata.Table, q string) float64 {
	name := Normalize(t.Name)

	switch {
	case name == q:
		return scoreExact
	case strings.Contains(name, q):
		return scoreNameSubstring
	case strings.Contains(Normalize(t.Remarks), q):
		return scoreTableRemarks
	}

	for _, word := range SplitWords(name) {
		if strings.HasPrefix(word, q) {
			return scoreWordPrefix
		}
	}

	return 0
}

func columnScore(c metadata.Column, q string) float64 {
	name := Normalize(c.Name)

	switch {
	case name == q:
		return scoreExact
	case strings.Contains(name, q):
		return scoreNameSubstring
	case strings.Contains(Normalize(c.TypeName), q):
		return scoreColumnType
	case strings.Contains(Normalize(c.Remarks), q):
		return scoreColumnRemarks
	}

	return 0
}

func mergeKeys(dst map[uint32]struct{}, src map[uint32]struct{}) {
	for k := range src {
		dst[k] = struct{}{}
	}
}
