// Package metadata defines the table and column descriptors the engine
// indexes, plus the parsing, query-text, and mock-data plumbing around them.
// Descriptors are plain values; identity is (schema, name) for tables and
// (schema, table, name) for columns.
package metadata

// Nullable marks whether a column accepts NULL values, mirroring the
// catalog's IS_NULLABLE Y/N convention.
type Nullable string

const (
	NullableYes Nullable = "Y"
	NullableNo  Nullable = "N"
)

// Table describes one table surfaced by the catalog.
type Table struct {
	Schema  string `json:"schema"  msgpack:"schema"`
	Name    string `json:"name"    msgpack:"name"`
	Remarks string `json:"remarks" msgpack:"remarks"`
}

// FullName returns schema-qualified "schema.name", or just the name when no
// schema is set.
func (t Table) FullName() string {
	if t.Schema == "" {
		return t.Name
	}

	return t.Schema + "." + t.Name
}

// Column describes one column of a table.
type Column struct {
	Schema   string   `json:"schema"    msgpack:"schema"`
	Table    string   `json:"table"     msgpack:"table"`
	Name     string   `json:"name"      msgpack:"name"`
	TypeName string   `json:"type_name" msgpack:"type_name"`
	Length   int      `json:"length"    msgpack:"length"`
	Scale    int      `json:"scale"     msgpack:"scale"`
	Nullable Nullable `json:"nullable"  msgpack:"nullable"`
	Remarks  string   `json:"remarks"   msgpack:"remarks"`
}

// FullName returns "schema.table.name" with empty segments dropped from the
// front.
func (c Column) FullName() string {
	name := c.Name
	if c.Table != "" {
		name = c.Table + "." + name
	}

	if c.Schema != "" {
		name = c.Schema + "." + name
	}

	return name
}
