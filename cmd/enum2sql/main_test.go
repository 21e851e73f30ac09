package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleInput = `Enumeration for Country Code 291
Code        State Name                 CQ  ITU
AK  Alaska                    1   1
HI  Hawaii                    31  6
`

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("enumerations.txt", []byte(sampleInput), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if got, want := stdout.String(), "Wrote 2 rows to states_provinces_import.sql\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "states_provinces_import.sql"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "(291, 'HI', 'Hawaii', NULL, NOW(), '6', '31');\n") {
		t.Errorf("unexpected script:\n%s", data)
	}
}

func TestRunMissingInput(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	want := "Error: enumerations.txt not found. Make sure it is in the same directory.\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if _, err := os.Stat("states_provinces_import.sql"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output written despite missing input: %v", err)
	}
}

func TestRunNoRows(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.sql")
	if err := os.WriteFile(in, []byte("Enumeration for Country Code 291\nCode  Name\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-input", in, "-output", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "No rows parsed") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output written for empty parse: %v", err)
	}
}

func TestRunConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte(sampleInput), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgFile := filepath.Join(dir, "enum2sql.yml")
	cfgData := "input: " + in + "\n" +
		"output: " + filepath.Join(dir, "from-config.sql") + "\n" +
		"table: subdivisions\n"
	if err := os.WriteFile(cfgFile, []byte(cfgData), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "from-flag.sql")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgFile, "-output", out, "-log-level", "info"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "INSERT INTO subdivisions (") {
		t.Errorf("table from config not applied:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.sql")); !errors.Is(err, fs.ErrNotExist) {
		t.Error("config output used despite -output flag")
	}
	if !strings.Contains(stderr.String(), "wrote SQL script") {
		t.Errorf("expected info log on stderr, got: %s", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", filepath.Join(t.TempDir(), "nope.yml")}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "error: ") {
		t.Errorf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-bogus"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
