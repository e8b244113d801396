// Package cache persists fetched metadata across process runs so a restart
// does not re-query a live database. All entries live in one gzip-compressed
// msgpack file keyed by (schema filter, pagination). Caching is strictly an
// optimization: every failure path degrades to a cache miss or a skipped
// save, never an error to the caller.
package cache

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/schemascout/schemascout/internal/metadata"
)

// DefaultTTL is how long an entry stays fresh unless configured otherwise.
const DefaultTTL = time.Hour

const cacheFileName = "metadata_cache.bin"

// Entry is one cached fetch result.
type Entry struct {
	Tables    []metadata.Table  `msgpack:"tables"`
	Columns   []metadata.Column `msgpack:"columns"`
	CreatedAt int64             `msgpack:"created_at"` // unix seconds
}

// Store reads and writes the on-disk cache file. The file is shared mutable
// state across process invocations: reads that fail for any reason are
// misses, writes are best-effort whole-file overwrites, last writer wins.
type Store struct {
	path string
	ttl  time.Duration

	// now is swappable for TTL tests
	now func() time.Time
}

// NewStore returns a store backed by dir/metadata_cache.bin. A ttl <= 0
// falls back to DefaultTTL.
func NewStore(dir string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		path: filepath.Join(dir, cacheFileName),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Key derives the deterministic cache key for a fetch. No filter maps to
// "ALL_SCHEMAS"; pagination only appears in the key when a limit is active.
func Key(schemaFilter string, limit, offset int) string {
	key := "ALL_SCHEMAS"
	if schemaFilter != "" {
		key = strings.ToUpper(schemaFilter)
	}

	if limit > 0 {
		key += "_LIMIT" + strconv.Itoa(limit) + "_OFFSET" + strconv.Itoa(offset)
	}

	return key
}

// Load returns the cached entry for the given fetch parameters, or nil when
// the file is missing, unreadable, corrupt, the key is absent, or the entry
// is older than the TTL. It never fails.
func (s *Store) Load(schemaFilter string, limit, offset int) *Entry {
	entries := s.readAll()

	entry, ok := entries[Key(schemaFilter, limit, offset)]
	if !ok {
		return nil
	}

	age := s.now().Unix() - entry.CreatedAt
	if age < 0 || time.Duration(age)*time.Second > s.ttl {
		log.Debug("cache entry expired", "key", Key(schemaFilter, limit, offset), "age_sec", age)
		return nil
	}

	return &entry
}

// Save upserts an entry for the given fetch parameters and rewrites the
// whole file. Failures are logged and swallowed.
func (s *Store) Save(schemaFilter string, tables []metadata.Table, columns []metadata.Column, limit, offset int) {
	entries := s.readAll()

	entries[Key(schemaFilter, limit, offset)] = Entry{
		Tables:    tables,
		Columns:   columns,
		CreatedAt: s.now().Unix(),
	}

	if err := s.writeAll(entries); err != nil {
		log.Warn("cache save skipped", "err", err)
	}
}

// Clear removes the cache file. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// readAll loads the full cache map, treating any failure (absent file, torn
// write, bad gzip, bad msgpack) as an empty map.
func (s *Store) readAll() map[string]Entry {
	entries := make(map[string]Entry)

	f, err := os.Open(s.path)
	if err != nil {
		return entries
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		log.Debug("cache file unreadable, treating as empty", "err", err)
		return entries
	}
	defer gz.Close()

	if err := msgpack.NewDecoder(gz).Decode(&entries); err != nil {
		log.Debug("cache file corrupt, treating as empty", "err", err)
		return make(map[string]Entry)
	}

	return entries
}

// writeAll serializes the full map to a uuid-suffixed temp file and renames
// it over the cache file, so concurrent readers only ever see a complete
// file.
func (s *Store) writeAll(entries map[string]Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp-" + uuid.NewString()

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(f)

	if err := msgpack.NewEncoder(gz).Encode(entries); err != nil {
		gz.Close()
		f.Close()
		os.Remove(tmp)

		return err
	}

	if err := gz.Close(); err != nil {
		f.Close()
		os.Remove(tmp)

		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.path)
}
