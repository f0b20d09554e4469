package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// IssueKind classifies a skipped line.
type IssueKind int

const (
	MalformedLine IssueKind = iota // no '=' on a data line
	EmptyKey
	EmptyValue
	BadNumber
	UnknownKey
)

func (k IssueKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case EmptyKey:
		return "empty key"
	case EmptyValue:
		return "empty value"
	case BadNumber:
		return "not a number"
	case UnknownKey:
		return "unknown key"
	default:
		return fmt.Sprintf("issue(%d)", int(k))
	}
}

// Issue is one line Parse skipped. Line numbers start at 1.
type Issue struct {
	Line int
	Kind IssueKind
	Text string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %q", i.Line, i.Kind, i.Text)
}

// Report describes what a load did. None of its contents are fatal.
type Report struct {
	// Applied lists the keys whose values came from the file, in the order
	// they were read. A key set twice appears twice; the last one wins.
	Applied []string
	Issues  []Issue
	// Missing is set when the file does not exist.
	Missing bool
	// Err holds an open or read failure other than a missing file.
	Err error
}

// OK reports whether every line was understood and the file was readable.
func (r Report) OK() bool {
	return !r.Missing && r.Err == nil && len(r.Issues) == 0
}

// Parse reads a settings file from rd. Fields the input does not set, or sets
// to something unusable, keep their defaults. The result is clamped. If rd
// fails before the end, every field is left at its default.
func Parse(schema *Schema, rd io.Reader) (Record, Report) {
	rec := Defaults(schema)
	var report Report

	br := bufio.NewReader(rd)
	lineNo := 0
	for {
		// ReadString has no line length limit, so one huge comment cannot
		// hide the lines around it.
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if lineNo == 1 {
				line = strings.TrimPrefix(line, "\ufeff")
			}
			rec = parseLine(rec, &report, lineNo, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A file that cannot be read to the end is treated as unreadable.
			report.Applied = nil
			report.Err = fmt.Errorf("reading settings: %w", err)
			return Defaults(schema), report
		}
	}

	return Clamp(rec), report
}

// parseLine applies one line to rec, or records why it was skipped.
func parseLine(rec Record, report *Report, lineNo int, line string) Record {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
		return rec
	}

	skip := func(kind IssueKind) Record {
		report.Issues = append(report.Issues, Issue{Line: lineNo, Kind: kind, Text: line})
		return rec
	}

	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return skip(MalformedLine)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return skip(EmptyKey)
	}
	if value == "" {
		return skip(EmptyValue)
	}

	v, err := ParseValue(value)
	if err != nil {
		return skip(BadNumber)
	}

	next, known := rec.Set(key, v)
	if !known {
		return skip(UnknownKey)
	}
	report.Applied = append(report.Applied, key)
	return next
}

// ParseValue parses a plain decimal number as written in a settings file.
// Infinities, NaN and hex floats are rejected.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("value %q is not a decimal number", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return v, nil
}

// LoadReport reads path. A missing or unreadable file yields the clamped
// defaults; the report says why.
func LoadReport(schema *Schema, path string) (Record, Report) {
	f, err := os.Open(path)
	if err != nil {
		report := Report{}
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = true
		} else {
			report.Err = fmt.Errorf("opening settings %s: %w", path, err)
		}
		return Defaults(schema), report
	}
	defer f.Close()

	return Parse(schema, f)
}

// Load reads path, falling back to defaults for anything it cannot use.
func Load(schema *Schema, path string) Record {
	rec, _ := LoadReport(schema, path)
	return rec
}
