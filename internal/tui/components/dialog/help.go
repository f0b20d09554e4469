package dialog

import (
	"fmt"
	"strings"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// HelpDialog displays the key bindings and what each field does
type HelpDialog struct {
	*BaseDialog

	schema    *settings.Schema
	bindings  []key.Binding
	activeTab int
	tabs      []string
}

// NewHelpDialog creates a help dialog describing schema and bindings
func NewHelpDialog(schema *settings.Schema, bindings []key.Binding) *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Help"),
		schema:     schema,
		bindings:   bindings,
		tabs:       []string{"Keys", "Fields"},
	}
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return d, d.Close()
		case "tab", "right", "l":
			d.activeTab = (d.activeTab + 1) % len(d.tabs)
		case "shift+tab", "left", "h":
			d.activeTab = (d.activeTab - 1 + len(d.tabs)) % len(d.tabs)
		case "1":
			d.activeTab = 0
		case "2":
			d.activeTab = 1
		}
	}

	return d, nil
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()
	tabStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.FgSubtle)
	activeTabStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.Accent).Bold(true).Underline(true)

	var tabs []string
	for i, tab := range d.tabs {
		style := tabStyle
		if i == d.activeTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tab))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	md := d.KeysMarkdown()
	if d.activeTab == 1 {
		md = d.FieldsMarkdown()
	}

	return d.RenderDialog(lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar,
		strings.TrimRight(styles.RenderMarkdown(md, d.contentWidth()), "\n"),
	))
}

func (d *HelpDialog) contentWidth() int {
	if d.Width == 0 {
		return 72
	}
	return min(max(d.Width-10, 30), 90)
}

// KeysMarkdown lists the key bindings as a Markdown table
func (d *HelpDialog) KeysMarkdown() string {
	var b strings.Builder
	b.WriteString("## Keyboard\n\n| Key | Action |\n|---|---|\n")
	for _, binding := range d.bindings {
		h := binding.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	return b.String()
}

// FieldsMarkdown describes every field of the schema
func (d *HelpDialog) FieldsMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Fields (%s)\n\n| Key | Default | Min | Effect |\n|---|---|---|---|\n", d.schema.Name)
	for _, f := range d.schema.Fields {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", f.Key, settings.FormatValue(f.Default), settings.FormatValue(f.Min), f.Description)
	}
	b.WriteString("\nValues are truncated to two decimals. There is no upper limit.\n")
	return b.String()
}
