package tui

import (
	"fmt"
	"slices"

	"github.com/billie-coop/scaler/internal/app"
	"github.com/billie-coop/scaler/internal/tui/components/dialog"
	"github.com/billie-coop/scaler/internal/tui/components/panel"
	"github.com/billie-coop/scaler/internal/tui/components/preview"
	"github.com/billie-coop/scaler/internal/tui/components/status"
	"github.com/billie-coop/scaler/internal/tui/events"
	"github.com/billie-coop/scaler/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Model hosts the multiplier overlay
type Model struct {
	width  int
	height int

	// Components
	panel         *panel.Panel
	preview       *preview.Model
	statusBar     *status.Component
	dialogManager *dialog.Manager

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// App holds all business logic
	app *app.App

	keys          KeyMap
	visible       bool
	showPreview   bool
	onThemeChange func(name string)
}

// New creates the TUI model for an app instance
func New(appInstance *app.App, eventBroker *events.Broker) *Model {
	p := panel.New(appInstance.Settings)
	p.SetDirtyFunc(appInstance.Settings.Dirty)

	keys := DefaultKeyMap()
	dialogManager := dialog.NewManager(
		eventBroker,
		appInstance.Settings.Store().Schema(),
		keys.Bindings(p.Keys()),
		appInstance.Settings.Dirty,
	)

	m := &Model{
		panel:         p,
		preview:       preview.New(),
		statusBar:     status.New(),
		dialogManager: dialogManager,
		eventBroker:   eventBroker,
		app:           appInstance,
		keys:          keys,
	}

	m.eventSub = eventBroker.Subscribe()
	m.statusBar.SetLeftContent(m.location())

	return m
}

// OnThemeChange registers a callback for a theme picked in the theme dialog
func (m *Model) OnThemeChange(f func(name string)) {
	m.onThemeChange = f
}

// Visible reports whether the overlay is shown
func (m *Model) Visible() bool {
	return m.visible
}

// Init initializes the TUI model and all components
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.panel.Init(),
		m.preview.Init(),
		m.statusBar.Init(),
		m.dialogManager.Init(),
		m.listenForEvents(),
	}

	if m.app.Config.StartVisible {
		cmds = append(cmds, m.show())
	}

	return tea.Batch(cmds...)
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if event, ok := msg.(events.Event); ok {
		cmds = append(cmds, m.handleEvent(event), m.listenForEvents())
		return m, tea.Batch(cmds...)
	}

	// An open dialog gets every key
	if m.dialogManager.IsDialogOpen() {
		_, cmd := m.dialogManager.Update(msg)
		cmds = append(cmds, cmd)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Batch(cmds...)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resize())

	case tea.KeyMsg:
		cmds = append(cmds, m.HandleKey(msg.String()))
		return m, tea.Batch(cmds...)
	}

	if m.visible && m.showPreview {
		_, cmd := m.preview.Update(msg)
		cmds = append(cmds, cmd)
	}
	_, cmd := m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// HandleKey routes one key press. Keys are named the way Bubble Tea's
// KeyMsg.String names them.
func (m *Model) HandleKey(k string) tea.Cmd {
	if m.dialogManager.IsDialogOpen() {
		return nil
	}

	switch {
	case k == "ctrl+c":
		return m.dialogManager.OpenDialog(dialog.QuitDialogType)
	case matches(k, m.keys.Toggle):
		if m.visible {
			return m.hide()
		}
		return m.show()
	}

	// Digits and signs belong to the field editor
	if m.visible && m.panel.Editing() {
		m.panel.HandleKey(k)
		return nil
	}

	switch {
	case matches(k, m.keys.Quit):
		return m.dialogManager.OpenDialog(dialog.QuitDialogType)
	case matches(k, m.keys.Help):
		return m.dialogManager.OpenDialog(dialog.HelpDialogType)
	case matches(k, m.keys.Theme):
		return m.dialogManager.OpenDialog(dialog.ThemeDialogType)
	}

	if !m.visible {
		return nil
	}

	switch {
	case matches(k, m.keys.Hide):
		return m.hide()
	case matches(k, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.syncPreview()
		return m.resize()
	case matches(k, m.keys.Copy):
		m.app.Clipboard.Copy(m.app.Settings.Preview())
		return nil
	case matches(k, m.keys.Reload):
		m.app.Settings.Refresh()
		return nil
	}

	return m.panel.HandleKey(k)
}

// show makes the overlay visible. Every show reloads the file, so edits
// made outside the overlay are picked up and unsaved ones are dropped.
func (m *Model) show() tea.Cmd {
	m.panel.CancelEdit()
	m.app.Settings.Refresh()
	m.visible = true
	m.syncPreview()
	m.publish(events.OverlayShownEvent)
	return m.panel.Focus()
}

func (m *Model) hide() tea.Cmd {
	m.panel.CancelEdit()
	m.visible = false
	m.publish(events.OverlayHiddenEvent)
	return m.panel.Blur()
}

func (m *Model) publish(eventType events.EventType) {
	m.eventBroker.Publish(events.Event{Type: eventType})
}

// View renders the whole screen
func (m *Model) View() tea.View {
	return tea.NewView(m.Render())
}

// Render draws the screen as a string
func (m *Model) Render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.dialogManager.IsDialogOpen() {
		if dialogView := m.dialogManager.View(); dialogView != "" {
			return dialogView
		}
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	title := styles.RenderThemeGradient("Wuchang Damage Scaler", true)
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		title,
		s.Muted.Render(fmt.Sprintf("  %s", m.app.Settings.Store().Schema().Name)),
	)

	var body string
	if m.visible {
		body = m.renderOverlay()
	} else {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			s.Hint.Render(fmt.Sprintf("Overlay hidden. Press %s to show it.", m.keys.Toggle.Help().Key)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(0, 1).Render(header),
		body,
		m.statusBar.View(),
	)
}

func (m *Model) renderOverlay() string {
	s := styles.CurrentTheme().S()
	l := m.layout()

	panelBox := s.BorderFocused.
		Width(l.panelWidth).
		Height(l.panelHeight).
		Padding(0, 1).
		Render(m.panel.View())

	if !m.showPreview {
		return panelBox
	}

	previewBox := s.Border.
		Width(l.previewWidth).
		Height(l.previewHeight).
		Padding(0, 1).
		Render(m.preview.View())

	if l.sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, panelBox, previewBox)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panelBox, previewBox)
}

func (m *Model) location() string {
	store := m.app.Settings.Store()
	marker := ""
	if m.app.Settings.Dirty() {
		marker = " " + styles.DirtyIcon
	}
	return store.Path() + marker
}

func matches(pressed string, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), pressed)
}
