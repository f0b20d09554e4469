package preview

import (
	"github.com/billie-coop/scaler/internal/tui/components/core"
	"github.com/billie-coop/scaler/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Model shows the settings file as it would be written, highlighted
type Model struct {
	viewport viewport.Model
	width    int
	height   int
	text     string
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty preview
func New() *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Model{viewport: vp}
}

// Init initializes the preview
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the viewport
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize sets the dimensions of the preview
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	m.viewport = viewport.New(
		viewport.WithWidth(width),
		viewport.WithHeight(height),
	)
	m.viewport.MouseWheelEnabled = true
	m.refreshContent()

	return nil
}

// SetText replaces the previewed file contents
func (m *Model) SetText(text string) {
	if text == m.text {
		return
	}
	m.text = text
	m.refreshContent()
}

// Text returns the unhighlighted file contents
func (m *Model) Text() string {
	return m.text
}

// View renders the preview
func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(styles.HighlightINI(m.text))
}
