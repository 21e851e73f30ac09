// Package convert runs the enumeration to SQL conversion end to end.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/andrewkroh/go-dxcc-subdivisions/enumeration"
	"github.com/andrewkroh/go-dxcc-subdivisions/internal/gotable"
	"github.com/andrewkroh/go-dxcc-subdivisions/subdivsql"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Result describes a conversion run.
type Result struct {
	Rows     int               // Rows written to the SQL script.
	Stats    enumeration.Stats // Line classification counts.
	Output   string            // Path of the SQL script, empty if not written.
	GoOutput string            // Path of the Go table, empty if not written.
}

// Run executes the full conversion pipeline. If the input does not exist it
// returns an error wrapping ErrInputNotFound. If no rows are parsed it
// returns the Result together with subdivsql.ErrNoRows. In both cases no
// file is written.
func Run(cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 1. Parse the enumeration.
	f, err := os.Open(cfg.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, cfg.Input)
		}
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, stats, err := enumeration.Parse(f, enumeration.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}
	log.Info("parsed enumeration",
		"input", cfg.Input,
		"lines", stats.Lines,
		"sections", stats.Headers,
		"rows", stats.Rows,
		"dropped", stats.Dropped())

	res := &Result{Rows: len(rows), Stats: stats}
	if len(rows) == 0 {
		return res, subdivsql.ErrNoRows
	}

	// 2. Render the SQL script in memory so a failure leaves no partial file.
	var buf bytes.Buffer
	if cfg.IncludeSchema {
		buf.WriteString(subdivsql.TableSchema(cfg.Table))
		buf.WriteString("\n")
	}
	if err := subdivsql.WriteInsert(&buf, rows, subdivsql.WithTable(cfg.Table)); err != nil {
		return nil, err
	}

	// 3. Write the SQL script.
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	res.Output = cfg.Output
	log.Info("wrote SQL script", "output", cfg.Output, "rows", len(rows), "bytes", buf.Len())

	// 4. Generate the Go table (optional).
	if cfg.GoOutput != "" {
		gcfg := gotable.Config{Output: cfg.GoOutput, Package: cfg.GoPackage, Table: cfg.Table}
		if err := gotable.Emit(gcfg, rows); err != nil {
			return nil, err
		}
		res.GoOutput = cfg.GoOutput
		log.Info("wrote Go table", "output", cfg.GoOutput, "var", gcfg.VarName())
	}

	return res, nil
}
