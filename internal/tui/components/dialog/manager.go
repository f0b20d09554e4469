package dialog

import (
	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/events"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	QuitDialogType  DialogType = "quit"
	HelpDialogType  DialogType = "help"
	ThemeDialogType DialogType = "theme"
)

// Manager manages all dialogs in the application
type Manager struct {
	dialogs      map[DialogType]Dialog
	activeDialog DialogType
	eventBroker  *events.Broker
	width        int
	height       int
}

// NewManager creates the dialogs. bindings feed the help dialog and dirty
// lets the quit dialog warn about unsaved edits.
func NewManager(eventBroker *events.Broker, schema *settings.Schema, bindings []key.Binding, dirty func() bool) *Manager {
	m := &Manager{
		dialogs:     make(map[DialogType]Dialog),
		eventBroker: eventBroker,
	}

	m.dialogs[QuitDialogType] = NewQuitDialog(dirty)
	m.dialogs[HelpDialogType] = NewHelpDialog(schema, bindings)
	m.dialogs[ThemeDialogType] = NewThemeSwitcher()

	return m
}

// Init initializes all dialogs
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles updates for the active dialog
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(wsm.Width, wsm.Height)
	}

	if m.activeDialog == "" {
		return m, nil
	}
	dialog, ok := m.dialogs[m.activeDialog]
	if !ok {
		return m, nil
	}

	model, cmd := dialog.Update(msg)
	if d, ok := model.(Dialog); ok {
		m.dialogs[m.activeDialog] = d
		if !d.IsOpen() {
			closed := m.activeDialog
			m.activeDialog = ""
			m.publish(events.DialogCloseEvent, closed)
		}
	}
	return m, cmd
}

// View renders the active dialog
func (m *Manager) View() string {
	if m.activeDialog == "" {
		return ""
	}

	if dialog, ok := m.dialogs[m.activeDialog]; ok {
		return dialog.View()
	}

	return ""
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a specific dialog
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	dialog, ok := m.dialogs[dialogType]
	if !ok {
		return nil
	}
	m.activeDialog = dialogType
	m.publish(events.DialogOpenEvent, dialogType)
	return dialog.Open()
}

// CloseActiveDialog closes the currently active dialog
func (m *Manager) CloseActiveDialog() tea.Cmd {
	if m.activeDialog == "" {
		return nil
	}
	dialog, ok := m.dialogs[m.activeDialog]
	if !ok {
		return nil
	}
	closed := m.activeDialog
	m.activeDialog = ""
	m.publish(events.DialogCloseEvent, closed)
	return dialog.Close()
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

// GetActiveDialog returns the currently active dialog type
func (m *Manager) GetActiveDialog() DialogType {
	return m.activeDialog
}

// Result returns what the dialog produced the last time it closed. A
// cancelled dialog has no result.
func (m *Manager) Result(dialogType DialogType) interface{} {
	dialog, ok := m.dialogs[dialogType]
	if !ok || dialog.IsCancelled() {
		return nil
	}
	return dialog.GetResult()
}

func (m *Manager) publish(eventType events.EventType, dialogType DialogType) {
	if m.eventBroker == nil {
		return
	}
	m.eventBroker.Publish(events.Event{
		Type:    eventType,
		Payload: events.DialogPayload{DialogID: string(dialogType)},
	})
}
