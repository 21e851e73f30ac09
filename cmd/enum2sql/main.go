// Command enum2sql converts a DXCC state and province enumeration text file
// into a SQL script that bulk-inserts the subdivisions.
//
// Run without arguments it reads enumerations.txt and writes
// states_provinces_import.sql in the current directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andrewkroh/go-dxcc-subdivisions/internal/convert"
	"github.com/andrewkroh/go-dxcc-subdivisions/internal/logging"
	"github.com/andrewkroh/go-dxcc-subdivisions/subdivsql"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		cfgPath   string
		logLevel  string
		logFormat string
		flags     = convert.DefaultConfig()
	)

	fs := flag.NewFlagSet("enum2sql", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgPath, "config", "", "Path to a YAML configuration file (optional)")
	fs.StringVar(&flags.Input, "input", flags.Input, "Enumeration text file to read")
	fs.StringVar(&flags.Output, "output", flags.Output, "SQL script to write")
	fs.StringVar(&flags.Table, "table", flags.Table, "Target table name")
	fs.BoolVar(&flags.IncludeSchema, "schema", false, "Prepend a CREATE TABLE IF NOT EXISTS statement")
	fs.StringVar(&flags.GoOutput, "go-output", "", "Also write a Go lookup table to this path (optional)")
	fs.StringVar(&flags.GoPackage, "go-package", flags.GoPackage, "Package name for the Go lookup table")
	fs.StringVar(&logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "text", "Diagnostic log format (text, json)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Defaults, then the config file, then explicitly set flags.
	cfg := convert.DefaultConfig()
	if cfgPath != "" {
		if err := convert.LoadConfig(cfgPath, &cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = flags.Input
		case "output":
			cfg.Output = flags.Output
		case "table":
			cfg.Table = flags.Table
		case "schema":
			cfg.IncludeSchema = flags.IncludeSchema
		case "go-output":
			cfg.GoOutput = flags.GoOutput
		case "go-package":
			cfg.GoPackage = flags.GoPackage
		}
	})
	cfg.Logger = logging.Setup(stderr, logLevel, logFormat)

	res, err := convert.Run(cfg)
	switch {
	case errors.Is(err, convert.ErrInputNotFound):
		fmt.Fprintf(stdout, "Error: %s not found. Make sure it is in the same directory.\n", cfg.Input)
		return 0
	case errors.Is(err, subdivsql.ErrNoRows):
		fmt.Fprintln(stdout, "No rows parsed - check that the enumeration text is correct.")
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", res.Rows, res.Output)
	if res.GoOutput != "" {
		fmt.Fprintf(stdout, "Wrote Go table to %s\n", res.GoOutput)
	}
	return 0
}
