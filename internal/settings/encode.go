package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FormatValue renders v the way the settings file stores it: exactly two
// fractional digits and a '.' separator regardless of locale.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Encode writes the header comment and one key=value line per field in
// schema order. The record is clamped first.
func Encode(w io.Writer, r Record) error {
	if r.schema == nil {
		return fmt.Errorf("encoding settings: record has no schema")
	}
	r = Clamp(r)

	bw := bufio.NewWriter(w)
	header := r.schema.Header
	if !strings.HasPrefix(header, "#") {
		header = "# " + header
	}
	bw.WriteString(header + "\n")
	for i, f := range r.schema.Fields {
		bw.WriteString(f.Key + "=" + FormatValue(r.values[i]) + "\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}

// Format returns the exact text Save would write for r.
func Format(r Record) string {
	var sb strings.Builder
	if err := Encode(&sb, r); err != nil {
		return ""
	}
	return sb.String()
}

// Save truncates path and writes r to it. The directory must already exist;
// Save never creates one.
func Save(path string, r Record) error {
	if r.schema == nil {
		return fmt.Errorf("saving settings %s: record has no schema", path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening settings %s for write: %w", path, err)
	}

	if err := Encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing settings %s: %w", path, err)
	}
	return nil
}
