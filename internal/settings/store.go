package settings

import (
	"log/slog"
)

// Store is the one long-lived settings record of a running panel together
// with the file it mirrors. It is not safe for concurrent use; the UI loop
// owns it.
//
// Its methods never return errors. Failures are logged and the in-memory
// record is kept as it was.
type Store struct {
	path   string
	schema *Schema
	logger *slog.Logger

	record     Record
	persisted  Record
	lastReport Report
	lastErr    error
}

// NewStore creates a store holding defaults. Nothing is read until Refresh.
func NewStore(path string, schema *Schema, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := Defaults(schema)
	return &Store{
		path:      path,
		schema:    schema,
		logger:    logger.With("settings", path),
		record:    defaults,
		persisted: defaults,
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Schema returns the layout the store reads and writes.
func (s *Store) Schema() *Schema {
	return s.schema
}

// Record returns the current in-memory values.
func (s *Store) Record() Record {
	return s.record
}

// Refresh replaces the in-memory record with the file's contents. Fields the
// file does not set usefully fall back to their defaults.
func (s *Store) Refresh() Report {
	rec, report := LoadReport(s.schema, s.path)
	s.record = rec
	s.persisted = rec
	s.lastReport = report

	switch {
	case report.Missing:
		s.logger.Info("settings file not found, using defaults")
	case report.Err != nil:
		s.logger.Warn("settings file unreadable, using defaults", "err", report.Err)
	default:
		s.logger.Debug("settings loaded", "applied", len(report.Applied))
	}
	for _, issue := range report.Issues {
		s.logger.Debug("skipped settings line", "line", issue.Line, "kind", issue.Kind.String(), "text", issue.Text)
	}
	return report
}

// LastReport returns the report of the most recent Refresh.
func (s *Store) LastReport() Report {
	return s.lastReport
}

// LastError returns the failure of the most recent Save or Reset, or nil.
func (s *Store) LastError() error {
	return s.lastErr
}

// Commit sets key to v and clamps it. Unknown keys are ignored. The returned
// value is what the record now holds.
func (s *Store) Commit(key string, v float64) float64 {
	next, ok := s.record.Set(key, v)
	if !ok {
		s.logger.Debug("ignoring edit of unknown field", "key", key)
		return 0
	}
	s.record = Clamp(next)
	got, _ := s.record.Get(key)
	return got
}

// Save clamps the record and writes it out. On failure the file and the
// in-memory values are left alone and false is returned.
func (s *Store) Save() bool {
	s.record = Clamp(s.record)
	return s.write(s.record)
}

// Reset puts every field back to its default and writes the result.
// The in-memory record is reset even when the write fails.
func (s *Store) Reset() bool {
	s.record = Defaults(s.schema)
	return s.write(s.record)
}

// Dirty reports whether the in-memory values differ from the file as last
// read or written.
func (s *Store) Dirty() bool {
	return !s.record.Equal(s.persisted)
}

func (s *Store) write(rec Record) bool {
	if err := Save(s.path, rec); err != nil {
		s.lastErr = err
		s.logger.Warn("settings not saved", "err", err)
		return false
	}
	s.lastErr = nil
	s.persisted = rec
	s.logger.Info("settings saved")
	return true
}
