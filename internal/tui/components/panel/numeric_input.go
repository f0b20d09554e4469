package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// NumericInput is a single-line editor that only accepts characters that can
// appear in a decimal number
type NumericInput struct {
	value     string
	focused   bool
	cursorPos int
}

// NewNumericInput creates an empty, unfocused input
func NewNumericInput() *NumericInput {
	return &NumericInput{}
}

// Value returns the current text
func (t *NumericInput) Value() string {
	return t.value
}

// SetValue replaces the text and moves the cursor to the end
func (t *NumericInput) SetValue(value string) {
	t.value = value
	t.cursorPos = len(value)
}

// Focus focuses the input
func (t *NumericInput) Focus() {
	t.focused = true
}

// Blur removes focus
func (t *NumericInput) Blur() {
	t.focused = false
}

// Focused reports whether the input takes key presses
func (t *NumericInput) Focused() bool {
	return t.focused
}

// HandleKey applies one key press, named the way Bubble Tea names them
func (t *NumericInput) HandleKey(k string) {
	if !t.focused {
		return
	}

	switch k {
	case "backspace":
		if t.cursorPos > 0 {
			t.value = t.value[:t.cursorPos-1] + t.value[t.cursorPos:]
			t.cursorPos--
		}
	case "delete":
		if t.cursorPos < len(t.value) {
			t.value = t.value[:t.cursorPos] + t.value[t.cursorPos+1:]
		}
	case "left":
		if t.cursorPos > 0 {
			t.cursorPos--
		}
	case "right":
		if t.cursorPos < len(t.value) {
			t.cursorPos++
		}
	case "home", "ctrl+a":
		t.cursorPos = 0
	case "end", "ctrl+e":
		t.cursorPos = len(t.value)
	case "ctrl+u":
		t.value = t.value[t.cursorPos:]
		t.cursorPos = 0
	default:
		if len(k) == 1 && strings.ContainsAny(k, "0123456789.-+") {
			t.value = t.value[:t.cursorPos] + k + t.value[t.cursorPos:]
			t.cursorPos++
		}
	}
}

// View renders the input with a block cursor when focused
func (t *NumericInput) View(text, cursor lipgloss.Style) string {
	if !t.focused {
		return text.Render(t.value)
	}

	if t.cursorPos < len(t.value) {
		return text.Render(t.value[:t.cursorPos]) +
			cursor.Render(string(t.value[t.cursorPos])) +
			text.Render(t.value[t.cursorPos+1:])
	}
	return text.Render(t.value) + cursor.Render(" ")
}
