package panel

import (
	"fmt"
	"math"
	"strings"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/components/core"
	"github.com/billie-coop/scaler/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Step is how far one +/- press moves a value
const Step = 0.05

// Sink receives every change the panel makes. Commit returns the value the
// record holds afterwards, which may differ from v after clamping.
type Sink interface {
	Record() settings.Record
	Commit(key string, v float64) float64
	Save() bool
	Reset() bool
}

// Button rows follow the field rows
const (
	saveRow = iota
	resetRow
	buttonRows
)

// ViewState is everything Render needs besides the record
type ViewState struct {
	Selected int    // row under the cursor; fields first, then Save and Reset
	Editing  bool   // the selected field shows the editor
	Editor   string // rendered editor, used when Editing
	Error    string // shown under the rows
	Dirty    bool
	Width    int
	Help     string
}

// Render draws the panel for rec. It reads nothing but its arguments and
// the current theme.
func Render(rec settings.Record, st ViewState) string {
	theme := styles.CurrentTheme()
	s := theme.S()
	schema := rec.Schema()
	if schema == nil {
		return ""
	}

	labelWidth := 0
	for _, f := range schema.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}

	var rows []string
	for i, f := range schema.Fields {
		marker := "  "
		label := s.Label
		if i == st.Selected {
			marker = s.Selected.Render(styles.CursorIcon + " ")
			label = s.Selected
		}

		value := s.Value.Render(settings.FormatValue(rec.At(i)))
		if st.Editing && i == st.Selected {
			value = st.Editor
		}

		hint := ""
		if f.Min > 0 {
			hint = s.Hint.Render(fmt.Sprintf("  min %s", settings.FormatValue(f.Min)))
		}

		rows = append(rows, marker+label.Width(labelWidth).Render(f.Label)+"  "+value+hint)
	}

	save := s.Button
	reset := s.Button
	switch st.Selected - len(schema.Fields) {
	case saveRow:
		save = s.ButtonFocused
	case resetRow:
		reset = s.ButtonFocused
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, save.Render("Save"), "  ", reset.Render("Reset"))
	if st.Dirty {
		buttons += "  " + s.Warning.Render(styles.DirtyIcon+" unsaved")
	}

	parts := []string{strings.Join(rows, "\n"), "", "  " + buttons}
	if st.Error != "" {
		parts = append(parts, "", "  "+s.Error.Render(styles.ErrorIcon+" "+st.Error))
	}
	if st.Editing {
		parts = append(parts, "", s.Hint.Render("  enter commit • esc cancel"))
	} else if st.Help != "" {
		parts = append(parts, "", s.Hint.Render("  "+st.Help))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if st.Width > 0 {
		content = lipgloss.NewStyle().MaxWidth(st.Width).Render(content)
	}
	return content
}

// Panel is the interactive multiplier editor
type Panel struct {
	core.FocusableBase
	core.SizeableBase

	sink     Sink
	keys     KeyMap
	input    *NumericInput
	selected int
	editing  bool
	err      string
	dirty    func() bool
}

var _ core.Component = (*Panel)(nil)
var _ core.Sizeable = (*Panel)(nil)
var _ core.Focusable = (*Panel)(nil)

// New creates a panel that sends its edits to sink
func New(sink Sink) *Panel {
	return &Panel{
		sink:  sink,
		keys:  DefaultKeyMap(),
		input: NewNumericInput(),
	}
}

// SetDirtyFunc supplies the unsaved-changes indicator
func (p *Panel) SetDirtyFunc(f func() bool) {
	p.dirty = f
}

// Keys returns the panel's key bindings
func (p *Panel) Keys() KeyMap {
	return p.keys
}

// Selected returns the row under the cursor
func (p *Panel) Selected() int {
	return p.selected
}

// Editing reports whether a field editor is open
func (p *Panel) Editing() bool {
	return p.editing
}

// Init initializes the panel
func (p *Panel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && p.IsFocused() {
		return p, p.HandleKey(msg.String())
	}
	return p, nil
}

// HandleKey applies one key press. Keys are named the way Bubble Tea's
// KeyMsg.String names them.
func (p *Panel) HandleKey(k string) tea.Cmd {
	if p.editing {
		p.handleEditKey(k)
		return nil
	}

	fields := p.fieldCount()
	rows := fields + buttonRows
	p.err = ""

	switch {
	case matches(k, p.keys.Up):
		p.selected = (p.selected - 1 + rows) % rows
	case matches(k, p.keys.Down):
		p.selected = (p.selected + 1) % rows
	case matches(k, p.keys.Increase):
		p.nudge(1)
	case matches(k, p.keys.Decrease):
		p.nudge(-1)
	case matches(k, p.keys.Save):
		p.sink.Save()
	case matches(k, p.keys.Reset):
		p.sink.Reset()
	case matches(k, p.keys.Edit):
		switch p.selected - fields {
		case saveRow:
			p.sink.Save()
		case resetRow:
			p.sink.Reset()
		default:
			p.startEdit()
		}
	}
	return nil
}

// CancelEdit closes the editor without committing
func (p *Panel) CancelEdit() {
	p.editing = false
	p.input.Blur()
	p.err = ""
}

func (p *Panel) handleEditKey(k string) {
	switch {
	case k == "enter":
		v, err := settings.ParseValue(p.input.Value())
		if err != nil {
			p.err = fmt.Sprintf("%q is not a number", p.input.Value())
			return
		}
		p.sink.Commit(p.selectedKey(), v)
		p.CancelEdit()
	case matches(k, p.keys.Cancel):
		p.CancelEdit()
	default:
		p.input.HandleKey(k)
	}
}

func (p *Panel) startEdit() {
	v, ok := p.sink.Record().Get(p.selectedKey())
	if !ok {
		return
	}
	p.input.SetValue(settings.FormatValue(v))
	p.input.Focus()
	p.editing = true
}

// nudge moves the selected field by one Step, counted in hundredths so the
// result stays on the two-decimal grid
func (p *Panel) nudge(dir int) {
	key := p.selectedKey()
	if key == "" {
		return
	}
	v, _ := p.sink.Record().Get(key)
	cents := math.Round(v*100) + float64(dir)*Step*100
	p.sink.Commit(key, cents/100)
}

func (p *Panel) selectedKey() string {
	schema := p.sink.Record().Schema()
	if schema == nil || p.selected >= len(schema.Fields) {
		return ""
	}
	return schema.Fields[p.selected].Key
}

func (p *Panel) fieldCount() int {
	if schema := p.sink.Record().Schema(); schema != nil {
		return len(schema.Fields)
	}
	return 0
}

// State returns what Render needs to draw the panel as it is now
func (p *Panel) State() ViewState {
	theme := styles.CurrentTheme()
	s := theme.S()

	st := ViewState{
		Selected: p.selected,
		Editing:  p.editing,
		Error:    p.err,
		Width:    p.Width,
		Help:     helpLine(p.keys),
	}
	if p.dirty != nil {
		st.Dirty = p.dirty()
	}
	if p.editing {
		cursor := lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.FgInverted)
		st.Editor = s.Badge.Render(p.input.View(s.Value, cursor))
	}
	return st
}

// View renders the panel
func (p *Panel) View() string {
	return Render(p.sink.Record(), p.State())
}

func helpLine(k KeyMap) string {
	var parts []string
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
