package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

const (
	headerHeight = 1
	statusHeight = 1
	// Below this width the preview goes under the panel
	sideBySideWidth = 100
)

type overlayLayout struct {
	sideBySide    bool
	panelWidth    int
	panelHeight   int
	previewWidth  int
	previewHeight int
}

// previewInner is the viewport size inside the preview border and padding
func (l overlayLayout) previewInner() (int, int) {
	return max(l.previewWidth-4, 1), max(l.previewHeight-2, 1)
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerHeight-statusHeight, 1)
}

func (m *Model) layout() overlayLayout {
	body := m.bodyHeight()
	l := overlayLayout{
		panelWidth:  m.width,
		panelHeight: body,
	}
	if !m.showPreview {
		return l
	}

	if m.width >= sideBySideWidth {
		l.sideBySide = true
		l.panelWidth = m.width * 3 / 5
		l.previewWidth = m.width - l.panelWidth
		l.previewHeight = body
		return l
	}

	l.panelHeight = body * 2 / 3
	l.previewWidth = m.width
	l.previewHeight = body - l.panelHeight
	return l
}

// resize resizes all components based on current window size
func (m *Model) resize() tea.Cmd {
	l := m.layout()

	var cmds []tea.Cmd
	// border and padding take two columns each side, the border a row each
	cmds = append(cmds, m.panel.SetSize(max(l.panelWidth-4, 1), max(l.panelHeight-2, 1)))
	if m.showPreview {
		cmds = append(cmds, m.preview.SetSize(l.previewInner()))
	}
	cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))
	cmds = append(cmds, m.dialogManager.SetSize(m.width, m.height))

	return tea.Batch(cmds...)
}
