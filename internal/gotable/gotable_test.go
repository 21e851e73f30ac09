package gotable

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrewkroh/go-dxcc-subdivisions/enumeration"
)

func TestToGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"states_provinces", "StatesProvinces"},
		{"dxcc_subdivisions", "DXCCSubdivisions"},
		{"us-states", "USStates"},
		{"itu_zones", "ITUZones"},
		{"public.states_provinces", "PublicStatesProvinces"},
		{"dxccEntity", "DXCCEntity"},
		{"DXCCEntity", "DXCCEntity"},
		{"subdivisions", "Subdivisions"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToGoName(tt.input); got != tt.want {
				t.Errorf("ToGoName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func sampleRows() []enumeration.Subdivision {
	one, sixteen := "1", "16"
	return []enumeration.Subdivision{
		{Entity: 291, Code: "AK", Name: "Alaska", CQZone: &one, ITUZone: &one},
		{Entity: 5, Code: "OB", Name: `O'Brien's "Island"`, CQZone: &sixteen},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Package: "refdata", Table: "states_provinces"}
	if err := Render(&buf, cfg, sampleRows()); err != nil {
		t.Fatal(err)
	}
	src := buf.String()

	if !strings.HasPrefix(src, "// Code generated by enum2sql. DO NOT EDIT.") {
		t.Errorf("missing generated header:\n%s", src)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "table.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	if file.Name.Name != "refdata" {
		t.Errorf("package = %s, want refdata", file.Name.Name)
	}

	var lit *ast.CompositeLit
	ast.Inspect(file, func(n ast.Node) bool {
		vs, ok := n.(*ast.ValueSpec)
		if !ok || len(vs.Names) != 1 || vs.Names[0].Name != "StatesProvinces" {
			return true
		}
		lit, _ = vs.Values[0].(*ast.CompositeLit)
		return false
	})
	if lit == nil {
		t.Fatalf("StatesProvinces not declared:\n%s", src)
	}
	if len(lit.Elts) != 2 {
		t.Errorf("got %d elements, want 2", len(lit.Elts))
	}

	for _, want := range []string{`"Alaska"`, `"O'Brien's \"Island\""`, `""`} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %s:\n%s", want, src)
		}
	}
}

func TestEmit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "refdata", "states_provinces.go")
	cfg := Config{Output: out, Table: "states_provinces"}
	if err := Emit(cfg, sampleRows()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "package "+DefaultPackage) {
		t.Errorf("expected default package name:\n%s", data)
	}
}

func TestEmitRequiresOutput(t *testing.T) {
	if err := Emit(Config{Table: "t"}, sampleRows()); err == nil {
		t.Error("expected error for empty output path")
	}
}
