package dialog

import (
	"fmt"
	"strings"

	"github.com/billie-coop/scaler/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// ThemeSwitcherDialog lets the user pick a theme, previewing each one live
type ThemeSwitcherDialog struct {
	*BaseDialog
	themes        []string
	selectedIndex int
	original      string
}

// NewThemeSwitcher creates a new theme switcher dialog
func NewThemeSwitcher() *ThemeSwitcherDialog {
	return &ThemeSwitcherDialog{
		BaseDialog: NewBaseDialog("Theme"),
	}
}

// Open remembers the active theme so a cancel can restore it
func (d *ThemeSwitcherDialog) Open() tea.Cmd {
	manager := styles.DefaultManager()
	d.themes = manager.List()
	d.original = manager.Current().Name
	d.selectedIndex = 0
	for i, name := range d.themes {
		if name == d.original {
			d.selectedIndex = i
			break
		}
	}
	return d.BaseDialog.Open()
}

// Init initializes the dialog
func (d *ThemeSwitcherDialog) Init() tea.Cmd {
	return nil
}

// Update handles input
func (d *ThemeSwitcherDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		return d, d.HandleKey(msg.String())
	}
	return d, nil
}

// HandleKey applies one key press
func (d *ThemeSwitcherDialog) HandleKey(k string) tea.Cmd {
	switch k {
	case "up", "k":
		if d.selectedIndex > 0 {
			d.selectedIndex--
			d.preview()
		}
	case "down", "j":
		if d.selectedIndex < len(d.themes)-1 {
			d.selectedIndex++
			d.preview()
		}
	case "enter":
		d.SetResult(d.themes[d.selectedIndex])
		return d.Close()
	case "esc":
		_ = styles.DefaultManager().SetTheme(d.original)
		return d.Cancel()
	}
	return nil
}

// Selected returns the highlighted theme name
func (d *ThemeSwitcherDialog) Selected() string {
	if d.selectedIndex < len(d.themes) {
		return d.themes[d.selectedIndex]
	}
	return ""
}

func (d *ThemeSwitcherDialog) preview() {
	_ = styles.DefaultManager().SetTheme(d.themes[d.selectedIndex])
}

// View renders the dialog
func (d *ThemeSwitcherDialog) View() string {
	if !d.isOpen {
		return ""
	}
	return d.RenderDialog(d.renderContent())
}

func (d *ThemeSwitcherDialog) renderContent() string {
	s := styles.CurrentTheme().S()
	var lines []string

	lines = append(lines, s.Subtle.Render("↑/↓ to preview, Enter to keep, Esc to revert"), "")

	for i, name := range d.themes {
		if i == d.selectedIndex {
			arrow := styles.RenderThemeGradient(styles.CursorIcon, false)
			lines = append(lines, fmt.Sprintf("%s %s", arrow, styles.RenderThemeGradient(name, true)))
			continue
		}
		line := "  " + name
		style := s.Text
		if name == d.original {
			line += " (current)"
			style = s.Muted
		}
		lines = append(lines, style.Render(line))
	}

	lines = append(lines, "", d.swatches())
	return strings.Join(lines, "\n")
}

func (d *ThemeSwitcherDialog) swatches() string {
	s := styles.CurrentTheme().S()
	bar := styles.RenderThemeGradient(strings.Repeat("━", 24), false)
	samples := strings.Join([]string{
		s.Success.Render("Saved"),
		s.Warning.Render("Unsaved"),
		s.Error.Render("Failed"),
		s.Info.Render("Loaded"),
	}, " ")
	return bar + "\n" + samples
}
