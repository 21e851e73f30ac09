// Package gotable emits parsed subdivisions as a Go lookup table.
//
// The generated file declares a Subdivision struct and a slice variable
// named after the SQL table, holding one literal per row in input order.
package gotable

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/andrewkroh/go-dxcc-subdivisions/enumeration"
)

// DefaultPackage is the package name used when Config.Package is empty.
const DefaultPackage = "subdivisions"

// Config controls Go table generation.
type Config struct {
	Output  string // Path of the generated .go file.
	Package string // Go package name.
	Table   string // SQL table name; the variable name is derived from it.
}

// VarName returns the exported variable name for the configured table.
func (c Config) VarName() string {
	return ToGoName(c.Table)
}

// Generate builds the Go source file for rows.
func Generate(cfg Config, rows []enumeration.Subdivision) *jen.File {
	pkg := cfg.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by enum2sql. DO NOT EDIT.")

	f.Comment("Subdivision is a state, province, or similar region within a DXCC entity.")
	f.Comment("Empty zone strings mean the zone was not listed.")
	f.Type().Id("Subdivision").Struct(
		jen.Id("DXCCEntity").Int(),
		jen.Id("Code").String(),
		jen.Id("Name").String(),
		jen.Id("CQZone").String(),
		jen.Id("ITUZone").String(),
	)

	varName := cfg.VarName()
	f.Commentf("%s lists %d subdivisions in enumeration order.", varName, len(rows))
	f.Var().Id(varName).Op("=").Index().Id("Subdivision").CustomFunc(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, func(g *jen.Group) {
		for _, r := range rows {
			g.Values(jen.Dict{
				jen.Id("DXCCEntity"): jen.Lit(r.Entity),
				jen.Id("Code"):       jen.Lit(r.Code),
				jen.Id("Name"):       jen.Lit(r.Name),
				jen.Id("CQZone"):     jen.Lit(zone(r.CQZone)),
				jen.Id("ITUZone"):    jen.Lit(zone(r.ITUZone)),
			})
		}
	})

	return f
}

// Render writes the generated source for rows to w.
func Render(w io.Writer, cfg Config, rows []enumeration.Subdivision) error {
	if err := Generate(cfg, rows).Render(w); err != nil {
		return fmt.Errorf("rendering Go table: %w", err)
	}
	return nil
}

// Emit writes the generated source for rows to cfg.Output, creating the
// parent directory if needed.
func Emit(cfg Config, rows []enumeration.Subdivision) error {
	if cfg.Output == "" {
		return fmt.Errorf("no output path for Go table")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := Generate(cfg, rows).Save(cfg.Output); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	return nil
}

func zone(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
