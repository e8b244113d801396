package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Row is one record from the row-fetch collaborator: a column-name → value
// mapping. Key lookup is case-insensitive because drivers disagree on the
// casing of catalog column names.
type Row = map[string]any

// TablesFromRows converts raw catalog rows into table descriptors. Rows
// missing a table name are skipped with a debug log; missing optional fields
// default to empty. It never fails: a malformed catalog degrades to fewer
// descriptors, not an error.
func TablesFromRows(rows []Row) []Table {
	tables := make([]Table, 0, len(rows))

	for i, row := range rows {
		name := stringField(row, "TABLE_NAME", "name")
		if name == "" {
			log.Debug("skipping table row without a name", "row", i)
			continue
		}

		tables = append(tables, Table{
			Schema:  stringField(row, "TABLE_SCHEM", "TABLE_SCHEMA", "schema"),
			Name:    name,
			Remarks: stringField(row, "REMARKS", "remarks"),
		})
	}

	return tables
}

// ColumnsFromRows converts raw catalog rows into column descriptors with the
// same tolerance rules as TablesFromRows. Nullable defaults to yes when the
// catalog does not say otherwise.
func ColumnsFromRows(rows []Row) []Column {
	columns := make([]Column, 0, len(rows))

	for i, row := range rows {
		name := stringField(row, "COLUMN_NAME", "name")
		table := stringField(row, "TABLE_NAME", "table")

		if name == "" || table == "" {
			log.Debug("skipping column row without identity", "row", i)
			continue
		}

		nullable := NullableYes
		if v := stringField(row, "IS_NULLABLE", "NULLABLE", "nullable"); v != "" {
			switch strings.ToUpper(v) {
			case "N", "NO", "FALSE", "0":
				nullable = NullableNo
			}
		}

		columns = append(columns, Column{
			Schema:   stringField(row, "TABLE_SCHEM", "TABLE_SCHEMA", "schema"),
			Table:    table,
			Name:     name,
			TypeName: stringField(row, "TYPE_NAME", "DATA_TYPE", "type_name"),
			Length:   intField(row, "COLUMN_SIZE", "LENGTH", "length"),
			Scale:    intField(row, "DECIMAL_DIGITS", "SCALE", "scale"),
			Nullable: nullable,
			Remarks:  stringField(row, "REMARKS", "remarks"),
		})
	}

	return columns
}

// stringField returns the first present, non-nil value among keys, trying
// exact casing first and lowercase second.
func stringField(row Row, keys ...string) string {
	for _, key := range keys {
		v, ok := row[key]
		if !ok {
			v, ok = row[strings.ToLower(key)]
		}

		if !ok || v == nil {
			continue
		}

		switch s := v.(type) {
		case string:
			return s
		case []byte:
			return string(s)
		default:
			return fmt.Sprintf("%v", s)
		}
	}

	return ""
}

// intField coerces the first present value among keys into an int, covering
// the numeric types drivers actually hand back.
func intField(row Row, keys ...string) int {
	for _, key := range keys {
		v, ok := row[key]
		if !ok {
			v, ok = row[strings.ToLower(key)]
		}

		if !ok || v == nil {
			continue
		}

		switch n := v.(type) {
		case int:
			return n
		case int32:
			return int(n)
		case int64:
			return int(n)
		case uint32:
			return int(n)
		case uint64:
			return int(n)
		case float64:
			return int(n)
		case string:
			if parsed, err := strconv.Atoi(n); err == nil {
				return parsed
			}
		}
	}

	return 0
}
