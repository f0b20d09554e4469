package tui

import (
	"fmt"
	"path/filepath"

	"github.com/billie-coop/scaler/internal/tui/components/dialog"
	"github.com/billie-coop/scaler/internal/tui/components/status"
	"github.com/billie-coop/scaler/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// listenForEvents waits for the next event from the broker
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventSub
		if !ok {
			return nil
		}
		return event
	}
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(payload.Message, status.ParseType(payload.Type))
		}

	case events.SettingsSaveFailedEvent:
		if payload, ok := event.Payload.(events.SettingsSaveFailedPayload); ok {
			m.app.Logger.Warn("save failed", "path", payload.Path, "error", payload.Err)
			m.syncState()
			return m.statusBar.ShowError(fmt.Sprintf("Could not write %s", filepath.Base(payload.Path)))
		}

	case events.SettingsLoadedEvent, events.SettingsSavedEvent,
		events.SettingsResetEvent, events.SettingsChangedEvent:
		m.syncState()

	case events.DialogCloseEvent:
		payload, ok := event.Payload.(events.DialogPayload)
		if !ok || payload.DialogID != string(dialog.ThemeDialogType) {
			return nil
		}
		// Highlighting is baked into the preview, redo it in the new colors
		m.preview.SetSize(m.layout().previewInner())
		if name, ok := m.dialogManager.Result(dialog.ThemeDialogType).(string); ok && name != "" && m.onThemeChange != nil {
			m.onThemeChange(name)
		}
	}

	return nil
}

// syncState pushes the current record to everything that shows it
func (m *Model) syncState() {
	m.statusBar.SetLeftContent(m.location())
	m.syncPreview()
}

func (m *Model) syncPreview() {
	if m.showPreview {
		m.preview.SetText(m.app.Settings.Preview())
	}
}
