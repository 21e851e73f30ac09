package convert

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/go-dxcc-subdivisions/internal/gotable"
	"github.com/andrewkroh/go-dxcc-subdivisions/subdivsql"
)

const (
	DefaultInput  = "enumerations.txt"
	DefaultOutput = "states_provinces_import.sql"
)

// Config holds all configuration for a conversion run. Fields can be set
// from a YAML file with LoadConfig.
type Config struct {
	// Input is the enumeration text file.
	Input string `yaml:"input"`

	// Output is the SQL script to write.
	Output string `yaml:"output"`

	// Table is the target table of the INSERT statement.
	Table string `yaml:"table"`

	// IncludeSchema prepends a CREATE TABLE IF NOT EXISTS statement.
	IncludeSchema bool `yaml:"include_schema"`

	// GoOutput, when set, is the path of a generated Go lookup table.
	GoOutput string `yaml:"go_output"`

	// GoPackage is the package name of the generated Go file.
	GoPackage string `yaml:"go_package"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Table:     subdivsql.DefaultTable,
		GoPackage: gotable.DefaultPackage,
	}
}

// LoadConfig reads a YAML configuration file and overlays it onto cfg.
// Keys missing from the file keep their current values.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

var (
	tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
	goIdentPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate checks the configuration for values that would produce a broken
// script or Go file.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	if !tableNamePattern.MatchString(c.Table) {
		return fmt.Errorf("invalid table name %q", c.Table)
	}
	if c.GoOutput != "" {
		if c.GoPackage != "" && !goIdentPattern.MatchString(c.GoPackage) {
			return fmt.Errorf("invalid Go package name %q", c.GoPackage)
		}
		if name := gotable.ToGoName(c.Table); !goIdentPattern.MatchString(name) {
			return fmt.Errorf("table name %q does not yield a Go identifier", c.Table)
		}
	}
	return nil
}
