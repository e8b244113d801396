package metadata

import (
	"fmt"
	"strings"
	"time"
)

// Mock data stands in for a live catalog when no backend is configured or a
// fetch fails in mock mode. Generation is deterministic: the same filter,
// limit, and offset always produce the same descriptors and rows.

const defaultMockTables = 20

// offsetSeed spaces the identifying numeric field so paginated requests
// produce non-overlapping, recognizable mock identifiers.
const offsetSeed = 100

var mockColumnSpecs = []struct {
	name     string
	typeName string
	length   int
	scale    int
	nullable Nullable
	remarks  string
}{
	{"ID", "INTEGER", 10, 0, NullableNo, "Synthetic primary key"},
	{"NAME", "VARCHAR", 120, 0, NullableYes, "Display name"},
	{"AMOUNT", "DECIMAL", 12, 2, NullableYes, "Synthetic amount"},
	{"CREATED_AT", "DATE", 0, 0, NullableYes, "Creation date"},
	{"NOTES", "VARCHAR", 500, 0, NullableYes, ""},
}

// MockTables returns limit synthetic tables (or a default batch when limit
// <= 0) whose numeric suffix starts at offset*100.
func MockTables(schemaFilter string, limit, offset int) []Table {
	count := limit
	if count <= 0 {
		count = defaultMockTables
	}

	schema := strings.ToUpper(schemaFilter)
	if schema == "" {
		schema = "MOCK"
	}

	start := offset * offsetSeed
	tables := make([]Table, 0, count)

	for i := 0; i < count; i++ {
		n := start + i
		tables = append(tables, Table{
			Schema:  schema,
			Name:    fmt.Sprintf("MOCK_TABLE_%d", n),
			Remarks: fmt.Sprintf("Synthetic table %d (no live connection)", n),
		})
	}

	return tables
}

// MockColumns returns the fixed typed column set for every table in tables.
func MockColumns(tables []Table) []Column {
	columns := make([]Column, 0, len(tables)*len(mockColumnSpecs))

	for _, t := range tables {
		for _, spec := range mockColumnSpecs {
			columns = append(columns, Column{
				Schema:   t.Schema,
				Table:    t.Name,
				Name:     spec.name,
				TypeName: spec.typeName,
				Length:   spec.length,
				Scale:    spec.scale,
				Nullable: spec.nullable,
				Remarks:  spec.remarks,
			})
		}
	}

	return columns
}

// MockRows synthesizes limit data rows for the given columns, typed by each
// column's declared type. The identifying numeric value of row i is
// offset*100 + i.
func MockRows(columns []Column, limit, offset int) []Row {
	if limit <= 0 {
		limit = 0
	}

	rows := make([]Row, 0, limit)

	for i := 0; i < limit; i++ {
		n := offset*offsetSeed + i
		row := make(Row, len(columns))

		for _, c := range columns {
			row[c.Name] = SyntheticValue(c.TypeName, c.Name, n)
		}

		rows = append(rows, row)
	}

	return rows
}

// SyntheticValue produces a deterministic placeholder value for one cell.
// Integers count from n, decimals carry synthetic cents, dates step one day
// per row from a fixed epoch, and everything else becomes a labeled string.
func SyntheticValue(typeName, columnName string, n int) any {
	switch strings.ToUpper(typeName) {
	case "INTEGER", "INT", "BIGINT", "SMALLINT", "TINYINT":
		return n
	case "DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "REAL":
		return float64(n) + float64(n%100)/100.0
	case "DATE", "TIMESTAMP", "DATETIME":
		epoch := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		return epoch.AddDate(0, 0, n).Format("2006-01-02")
	default:
		return fmt.Sprintf("%s_%d", strings.ToLower(columnName), n)
	}
}
