package search

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/schemascout/schemascout/internal/intern"
	"github.com/schemascout/schemascout/internal/metadata"
)

const engineAccelerated = "accelerated"

// AcceleratedEngine implements the same contract as ReferenceEngine on
// radix-compressed patricia tries, which collapse single-child chains into
// one node and stay cache-friendlier on large catalogs. Observable behavior
// is identical; only the candidate lookup differs.
type AcceleratedEngine struct {
	pool *intern.Pool

	tableNames  *patricia.Trie
	tableWords  *patricia.Trie
	columnNames *patricia.Trie
	columnWords *patricia.Trie

	tables  []metadata.Table
	columns []metadata.Column
}

// NewAcceleratedEngine returns an empty accelerated engine.
func NewAcceleratedEngine(pool *intern.Pool) *AcceleratedEngine {
	return &AcceleratedEngine{pool: pool}
}

// acceleratedAvailable probes the patricia implementation with a tiny
// insert/visit round trip. Any panic or misbehavior downgrades to the
// reference engine; unavailability is never an error.
func acceleratedAvailable() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("accelerated engine probe failed, using reference engine", "panic", r)
			ok = false
		}
	}()

	probe := patricia.NewTrie()
	probe.Set(patricia.Prefix("probe"), []uint32{1})

	found := false

	err := probe.VisitSubtree(patricia.Prefix("pro"), func(_ patricia.Prefix, item patricia.Item) error {
		_, found = item.([]uint32)
		return nil
	})

	return err == nil && found
}

// BuildIndex clears all prior state and indexes the given descriptors.
func (e *AcceleratedEngine) BuildIndex(tables []metadata.Table, columns []metadata.Column) {
	e.tableNames = patricia.NewTrie()
	e.tableWords = patricia.NewTrie()
	e.columnNames = patricia.NewTrie()
	e.columnWords = patricia.NewTrie()
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

		addKey(e.tableNames, Normalize(t.Name), key)
		for _, word := range SplitWords(Normalize(t.Name)) {
			addKey(e.tableWords, word, key)
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

		addKey(e.columnNames, Normalize(c.Name), key)
		for _, word := range SplitWords(Normalize(c.Name)) {
			addKey(e.columnWords, word, key)
		}
	}

	log.Debug("index built",
		"engine", engineAccelerated, "tables", len(e.tables), "columns", len(e.columns))
}

// SearchTables returns tables scoring > 0 against query, best first.
func (e *AcceleratedEngine) SearchTables(query string) []TableResult {
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
	visitKeys(e.tableNames, q, candidates)
	visitKeys(e.tableWords, q, candidates)

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
func (e *AcceleratedEngine) SearchColumns(query string) []ColumnResult {
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
	visitKeys(e.columnNames, q, candidates)
	visitKeys(e.columnWords, q, candidates)

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
func (e *AcceleratedEngine) Stats() Stats {
	return Stats{
		Engine:  engineAccelerated,
		Tables:  len(e.tables),
		Columns: len(e.columns),
	}
}

func (e *AcceleratedEngine) intern(s string) string {
	if e.pool == nil {
		return s
	}

	return e.pool.Intern(s)
}

// addKey appends key to the []uint32 item stored under word.
func addKey(t *patricia.Trie, word string, key uint32) {
	prefix := patricia.Prefix(word)

	if item := t.Get(prefix); item != nil {
		t.Set(prefix, append(item.([]uint32), key))
		return
	}

	t.Set(prefix, []uint32{key})
}

// visitKeys collects the keys of every word under prefix q into dst.
func visitKeys(t *patricia.Trie, q string, dst map[uint32]struct{}) {
	err := t.VisitSubtree(patricia.Prefix(q), func(_ patricia.Prefix, item patricia.Item) error {
		for _, k := range item.([]uint32) {
			dst[k] = struct{}{}
		}

		return nil
	})
	if err != nil {
		log.Error("error visiting trie subtree", "err", err)
	}
}
