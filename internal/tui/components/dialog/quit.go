package dialog

import (
	"github.com/billie-coop/scaler/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// QuitDialog asks for confirmation before quitting
type QuitDialog struct {
	*BaseDialog

	selectedNo bool // "No" is preselected
	dirty      func() bool
}

// NewQuitDialog creates a new quit confirmation dialog. dirty, if set,
// reports unsaved edits so the dialog can warn about them.
func NewQuitDialog(dirty func() bool) *QuitDialog {
	return &QuitDialog{
		BaseDialog: NewBaseDialog("Quit scaler?"),
		selectedNo: true,
		dirty:      dirty,
	}
}

// Open opens the dialog with "No" selected
func (d *QuitDialog) Open() tea.Cmd {
	d.selectedNo = true
	return d.BaseDialog.Open()
}

// Init initializes the dialog
func (d *QuitDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *QuitDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return d, d.HandleKey(msg.String())
	}
	return d, nil
}

// HandleKey applies one key press
func (d *QuitDialog) HandleKey(k string) tea.Cmd {
	switch k {
	case "ctrl+c", "y", "Y":
		// Ctrl+C twice quits
		d.SetResult(true)
		return tea.Quit
	case "esc", "n", "N":
		return d.Cancel()
	case "left", "right", "tab", "h", "l":
		d.selectedNo = !d.selectedNo
	case "enter", "space", " ":
		if d.selectedNo {
			return d.Cancel()
		}
		d.SetResult(true)
		return tea.Quit
	}
	return nil
}

// View renders the dialog
func (d *QuitDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	question := s.Title.Render("Are you sure you want to quit?")

	yesStyle := s.Button
	noStyle := s.Button
	if d.selectedNo {
		noStyle = s.ButtonFocused
	} else {
		yesStyle = s.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesStyle.Render("Yes"),
		"  ",
		noStyle.Render("No"),
	)

	buttonsContainer := lipgloss.NewStyle().
		Width(lipgloss.Width(question)).
		Align(lipgloss.Right).
		Render(buttons)

	lines := []string{question}
	if d.dirty != nil && d.dirty() {
		lines = append(lines, "", s.Warning.Render(styles.WarningIcon+" Unsaved changes will be lost"))
	}
	lines = append(lines,
		"",
		buttonsContainer,
		"",
		s.Hint.Render("Ctrl+C again to quit • Esc to cancel"),
	)

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
