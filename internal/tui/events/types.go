package events

// EventType identifies the type of event
type EventType string

const (
	// Settings events
	SettingsLoadedEvent     EventType = "settings.loaded"
	SettingsSavedEvent      EventType = "settings.saved"
	SettingsSaveFailedEvent EventType = "settings.save_failed"
	SettingsResetEvent      EventType = "settings.reset"
	SettingsChangedEvent    EventType = "settings.changed"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	OverlayShownEvent  EventType = "ui.overlay.shown"
	OverlayHiddenEvent EventType = "ui.overlay.hidden"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"

	// Wildcard subscribes to every event type
	Wildcard EventType = "*"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// SettingsLoadedPayload describes a refresh from disk
type SettingsLoadedPayload struct {
	Path    string
	Missing bool
	Skipped int // lines the parser ignored
	Err     error
}

// SettingsSavedPayload describes a successful write
type SettingsSavedPayload struct {
	Path string
}

// SettingsSaveFailedPayload carries the write failure
type SettingsSaveFailedPayload struct {
	Path string
	Err  error
}

// SettingsChangedPayload describes one committed edit
type SettingsChangedPayload struct {
	Key   string
	Value float64
}

// StatusMessagePayload is shown in the status bar
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "success", "warning", "error"
}

// DialogPayload names the dialog that opened or closed
type DialogPayload struct {
	DialogID string
}
