package subdivsql

import (
	"fmt"
	"strings"
)

// reservedWords are keywords reserved by both PostgreSQL and SQLite. A
// table name matching one is double-quoted.
var reservedWords = map[string]bool{
	"all": true, "and": true, "as": true, "asc": true, "case": true,
	"check": true, "collate": true, "column": true, "constraint": true,
	"create": true, "default": true, "desc": true, "distinct": true,
	"do": true, "else": true, "end": true, "except": true, "for": true,
	"foreign": true, "from": true, "group": true, "having": true, "in": true,
	"intersect": true, "into": true, "limit": true, "not": true, "null": true,
	"offset": true, "on": true, "or": true, "order": true, "primary": true,
	"references": true, "select": true, "table": true, "then": true,
	"to": true, "union": true, "unique": true, "user": true, "using": true,
	"when": true, "where": true, "window": true, "with": true,
}

// quoteName returns name double-quoted if it is a reserved word, otherwise
// unchanged.
func quoteName(name string) string {
	if reservedWords[strings.ToLower(name)] {
		return `"` + name + `"`
	}
	return name
}

type column struct {
	Name    string
	SQLType string
	NotNull bool
	PK      bool
	Default string
	Comment string
}

var tableColumns = []column{
	{Name: "id", SQLType: "SERIAL", PK: true},
	{Name: "dxcc_entity", SQLType: "INTEGER", NotNull: true, Comment: "DXCC entity code"},
	{Name: "code", SQLType: "TEXT", NotNull: true, Comment: "subdivision code"},
	{Name: "name", SQLType: "TEXT", NotNull: true},
	{Name: "type", SQLType: "TEXT", Comment: "reserved, always NULL"},
	{Name: "cq_zone", SQLType: "TEXT"},
	{Name: "itu_zone", SQLType: "TEXT"},
	{Name: "created_at", SQLType: "TIMESTAMP", Default: "CURRENT_TIMESTAMP"},
}

// TableSchema returns a CREATE TABLE IF NOT EXISTS statement for the given
// table (DefaultTable if empty) with the columns the INSERT statement fills.
// Comments are placed inside the body. The statement is accepted by both
// PostgreSQL and SQLite.
func TableSchema(table string) string {
	if table == "" {
		table = DefaultTable
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteName(table))
	b.WriteString("  -- DXCC states, provinces, and other subdivisions\n")

	for i, col := range tableColumns {
		b.WriteString("  ")
		b.WriteString(col.Name)
		b.WriteString(" ")
		b.WriteString(col.SQLType)

		if col.PK {
			b.WriteString(" PRIMARY KEY")
		}
		if col.NotNull {
			b.WriteString(" NOT NULL")
		}
		if col.Default != "" {
			b.WriteString(" DEFAULT ")
			b.WriteString(col.Default)
		}

		// Trailing comma unless last column.
		if i < len(tableColumns)-1 {
			b.WriteString(",")
		}

		if col.Comment != "" {
			fmt.Fprintf(&b, " -- %s", col.Comment)
		}

		b.WriteString("\n")
	}

	b.WriteString(");\n")
	return b.String()
}
