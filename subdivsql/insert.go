// Package subdivsql renders parsed subdivisions as a SQL import script.
//
// The script is a single multi-row INSERT targeting the states_provinces
// table (or another table with the same columns):
//
//	INSERT INTO states_provinces (dxcc_entity, code, name, type, created_at, cq_zone, itu_zone)
//	VALUES
//	  (291, 'AK', 'Alaska', NULL, NOW(), '1', '1');
//
// Names and zones are quoted as SQL string literals with embedded single
// quotes doubled. Codes are emitted verbatim.
package subdivsql

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrewkroh/go-dxcc-subdivisions/enumeration"
)

// DefaultTable is the table targeted when no other is configured.
const DefaultTable = "states_provinces"

// Columns is the fixed column list of the INSERT statement.
var Columns = []string{"dxcc_entity", "code", "name", "type", "created_at", "cq_zone", "itu_zone"}

// ErrNoRows is returned when there is nothing to insert.
var ErrNoRows = errors.New("no rows to insert")

// Option configures rendering.
type Option func(*insertConfig)

type insertConfig struct {
	table string
}

// WithTable sets the target table name.
func WithTable(name string) Option {
	return func(c *insertConfig) {
		if name != "" {
			c.table = name
		}
	}
}

// WriteInsert writes a single INSERT statement covering all rows, in order,
// terminated by ";\n". It returns ErrNoRows if rows is empty.
func WriteInsert(w io.Writer, rows []enumeration.Subdivision, opts ...Option) error {
	s, err := FormatInsert(rows, opts...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing insert statement: %w", err)
	}
	return nil
}

// FormatInsert returns the INSERT statement for rows as a string.
func FormatInsert(rows []enumeration.Subdivision, opts ...Option) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	cfg := insertConfig{table: DefaultTable}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s)\nVALUES\n", quoteName(cfg.table), strings.Join(Columns, ", "))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("  ")
		b.WriteString(ValueTuple(row))
	}
	b.WriteString(";\n")
	return b.String(), nil
}

// ValueTuple renders one row as a parenthesized value list matching Columns.
func ValueTuple(row enumeration.Subdivision) string {
	return "(" + strings.Join([]string{
		strconv.Itoa(row.Entity),
		"'" + row.Code + "'",
		Quote(row.Name),
		nullable(row.Type),
		"NOW()",
		nullable(row.CQZone),
		nullable(row.ITUZone),
	}, ", ") + ")"
}

// Quote returns s as a SQL string literal, doubling every single quote.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Unquote reverses Quote. It fails if lit is not a single well-formed
// string literal.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", fmt.Errorf("not a quoted SQL literal: %q", lit)
	}
	body := lit[1 : len(lit)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\'' {
			if i+1 >= len(body) || body[i+1] != '\'' {
				return "", fmt.Errorf("unescaped quote at offset %d in %q", i+1, lit)
			}
			i++
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func nullable(s *string) string {
	if s == nil {
		return "NULL"
	}
	return Quote(*s)
}
