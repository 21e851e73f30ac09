package enumeration

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var headerPattern = regexp.MustCompile(`(?i)^\s*Enumeration\s+for\s+Country\s+Code\s+(\d+)`)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Stats counts how each input line was classified.
type Stats struct {
	Lines         int // Lines read.
	Blank         int // Empty or whitespace-only lines.
	Headers       int // Section header lines.
	ColumnHeaders int // Column header lines starting with "Code".
	BeforeHeader  int // Data lines seen before any section header.
	TooFewFields  int // Data lines with fewer than two columns.
	Rows          int // Subdivisions produced.
}

// Dropped returns the number of data lines that did not produce a row.
func (s Stats) Dropped() int {
	return s.BeforeHeader + s.TooFewFields
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report skipped lines. Skipped lines
// are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// Parser classifies enumeration lines one at a time and tracks the current
// section. The zero value is not usable; use NewParser.
type Parser struct {
	log     *slog.Logger
	section *Section
	line    int
	stats   Stats
}

// NewParser returns a Parser with no open section.
func NewParser(opts ...Option) *Parser {
	p := &Parser{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Section returns the currently open section, if any.
func (p *Parser) Section() (Section, bool) {
	if p.section == nil {
		return Section{}, false
	}
	return *p.section, true
}

// Stats returns the classification counts so far.
func (p *Parser) Stats() Stats {
	return p.stats
}

// ParseLine classifies one line. It returns a Subdivision and true for a
// data line inside an open section that has at least two columns. Header,
// column header, blank, and unparseable lines return false.
func (p *Parser) ParseLine(line string) (Subdivision, bool) {
	p.line++
	p.stats.Lines++
	line = strings.TrimRight(line, "\r\n")

	if strings.TrimSpace(line) == "" {
		p.stats.Blank++
		return Subdivision{}, false
	}

	if entity, ok := matchHeader(line); ok {
		p.section = &Section{Entity: entity}
		p.stats.Headers++
		p.log.Debug("opened section", "line", p.line, "entity", entity)
		return Subdivision{}, false
	}

	if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "Code") {
		p.stats.ColumnHeaders++
		return Subdivision{}, false
	}

	if p.section == nil {
		p.stats.BeforeHeader++
		p.log.Debug("skipping line before first section header", "line", p.line)
		return Subdivision{}, false
	}

	row, ok := ParseRow(p.section.Entity, line)
	if !ok {
		p.stats.TooFewFields++
		p.log.Debug("skipping line with too few columns", "line", p.line, "text", line)
		return Subdivision{}, false
	}

	p.stats.Rows++
	return row, true
}

// Parse reads an entire enumeration and returns its subdivisions in input
// order. A leading byte order mark is consumed before parsing; a UTF-16 BOM
// switches decoding to UTF-16.
func Parse(r io.Reader, opts ...Option) ([]Subdivision, Stats, error) {
	p := NewParser(opts...)

	sc := bufio.NewScanner(NewReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []Subdivision
	for sc.Scan() {
		if row, ok := p.ParseLine(sc.Text()); ok {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, p.Stats(), fmt.Errorf("reading enumeration line %d: %w", p.line+1, err)
	}

	return rows, p.Stats(), nil
}

// NewReader wraps r so that a leading byte order mark is removed. Input
// without a BOM passes through unchanged.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, xunicode.BOMOverride(encoding.Nop.NewDecoder()))
}

func matchHeader(line string) (int, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	entity, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return entity, true
}
