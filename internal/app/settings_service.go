package app

import (
	"fmt"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/events"
)

// SettingsService wraps the settings store and announces every change on
// the event broker. It satisfies panel.Sink.
type SettingsService struct {
	store       *settings.Store
	eventBroker *events.Broker
}

// NewSettingsService creates a settings service around store
func NewSettingsService(store *settings.Store, eventBroker *events.Broker) *SettingsService {
	return &SettingsService{
		store:       store,
		eventBroker: eventBroker,
	}
}

// Store exposes the underlying store
func (s *SettingsService) Store() *settings.Store {
	return s.store
}

// Record returns the current values
func (s *SettingsService) Record() settings.Record {
	return s.store.Record()
}

// Refresh reloads the settings file. The overlay calls it every time it
// becomes visible.
func (s *SettingsService) Refresh() settings.Report {
	report := s.store.Refresh()

	s.publish(events.SettingsLoadedEvent, events.SettingsLoadedPayload{
		Path:    s.store.Path(),
		Missing: report.Missing,
		Skipped: len(report.Issues),
		Err:     report.Err,
	})

	switch {
	case report.Err != nil:
		s.status("Settings unreadable, using defaults", "warning")
	case report.Missing:
		s.status("No settings file yet, using defaults", "info")
	case len(report.Issues) > 0:
		s.status(fmt.Sprintf("Loaded settings, skipped %d line(s)", len(report.Issues)), "warning")
	}
	return report
}

// Commit stores an edited value, clamped to its field's bounds
func (s *SettingsService) Commit(key string, v float64) float64 {
	got := s.store.Commit(key, v)
	s.publish(events.SettingsChangedEvent, events.SettingsChangedPayload{Key: key, Value: got})
	return got
}

// Save writes the current values to disk
func (s *SettingsService) Save() bool {
	if !s.store.Save() {
		s.saveFailed()
		return false
	}
	s.publish(events.SettingsSavedEvent, events.SettingsSavedPayload{Path: s.store.Path()})
	s.status("Settings saved", "success")
	return true
}

// Reset restores defaults and writes them to disk
func (s *SettingsService) Reset() bool {
	ok := s.store.Reset()
	s.publish(events.SettingsResetEvent, nil)
	if !ok {
		s.saveFailed()
		return false
	}
	s.status("Settings reset to defaults", "success")
	return true
}

// Preview returns the exact text Save would write
func (s *SettingsService) Preview() string {
	return settings.Format(s.store.Record())
}

// Dirty reports unsaved edits
func (s *SettingsService) Dirty() bool {
	return s.store.Dirty()
}

func (s *SettingsService) saveFailed() {
	s.publish(events.SettingsSaveFailedEvent, events.SettingsSaveFailedPayload{
		Path: s.store.Path(),
		Err:  s.store.LastError(),
	})
}

func (s *SettingsService) status(message, kind string) {
	s.publish(events.StatusMessageEvent, events.StatusMessagePayload{
		Message: message,
		Type:    kind,
	})
}

func (s *SettingsService) publish(eventType events.EventType, payload interface{}) {
	if s.eventBroker == nil {
		return
	}
	s.eventBroker.Publish(events.Event{Type: eventType, Payload: payload})
}
