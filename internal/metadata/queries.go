package metadata

import (
	"fmt"
	"strings"
)

// TableQuery builds the catalog query handed to the row-fetch collaborator
// for table descriptors. schemaFilter narrows to one schema; limit <= 0
// disables pagination.
func TableQuery(schemaFilter string, limit, offset int) string {
	var b strings.Builder

	b.WriteString("SELECT TABLE_SCHEM, TABLE_NAME, REMARKS FROM INFORMATION_SCHEMA.TABLES")

	if schemaFilter != "" {
		fmt.Fprintf(&b, " WHERE UPPER(TABLE_SCHEM) = '%s'", escapeLiteral(strings.ToUpper(schemaFilter)))
	}

	b.WriteString(" ORDER BY TABLE_SCHEM, TABLE_NAME")
	appendPagination(&b, limit, offset)

	return b.String()
}

// ColumnQuery builds the catalog query for column descriptors. Pagination
// applies to tables, not columns, so only the schema filter narrows this
// query.
func ColumnQuery(schemaFilter string) string {
	var b strings.Builder

	b.WriteString("SELECT TABLE_SCHEM, TABLE_NAME, COLUMN_NAME, TYPE_NAME, " +
		"COLUMN_SIZE, DECIMAL_DIGITS, IS_NULLABLE, REMARKS FROM INFORMATION_SCHEMA.COLUMNS")

	if schemaFilter != "" {
		fmt.Fprintf(&b, " WHERE UPPER(TABLE_SCHEM) = '%s'", escapeLiteral(strings.ToUpper(schemaFilter)))
	}

	b.WriteString(" ORDER BY TABLE_SCHEM, TABLE_NAME, COLUMN_NAME")

	return b.String()
}

func appendPagination(b *strings.Builder, limit, offset int) {
	if limit <= 0 {
		return
	}

	fmt.Fprintf(b, " LIMIT %d", limit)

	if offset > 0 {
		fmt.Fprintf(b, " OFFSET %d", offset)
	}
}

// escapeLiteral doubles single quotes; schema filters come from user flags,
// not untrusted input, but a quote in a schema name must not break the query.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
