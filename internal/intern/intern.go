// Package intern deduplicates repeated catalog strings (schema and table
// names recur across thousands of column descriptors) so large catalogs
// stay bounded in memory.
package intern

import "sync"

// Pool is a content-keyed string pool. Equal strings interned through the
// same pool share one backing instance. A Pool is created by the process's
// composition root and passed to whatever needs it; the zero value is ready
// to use and safe for concurrent callers.
type Pool struct {
	strings sync.Map
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Intern returns the pooled instance equal to s, storing s on first sight.
func (p *Pool) Intern(s string) string {
	if cached, ok := p.strings.Load(s); ok {
		return cached.(string)
	}

	p.strings.Store(s, s)

	return s
}

// Len reports how many distinct strings the pool holds.
func (p *Pool) Len() int {
	n := 0

	p.strings.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
