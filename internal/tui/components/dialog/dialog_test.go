package dialog

import (
	"testing"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/billie-coop/scaler/internal/tui/events"
	"github.com/billie-coop/scaler/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuitDialog(t *testing.T) {
	d := NewQuitDialog(func() bool { return true })
	d.Open()

	assert.Contains(t, ansi.Strip(d.View()), "Unsaved changes")

	assert.Nil(t, d.HandleKey("enter"), "No is preselected")
	assert.False(t, d.IsOpen())
	assert.True(t, d.IsCancelled())

	d.Open()
	d.HandleKey("tab")
	cmd := d.HandleKey("enter")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	d.Open()
	cmd = d.HandleKey("ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpDialog_Markdown(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "toggle overlay")),
		key.NewBinding(key.WithKeys("x")),
	}
	d := NewHelpDialog(settings.Multipliers, bindings)

	keys := d.KeysMarkdown()
	assert.Contains(t, keys, "| `ctrl+o` | toggle overlay |")
	assert.NotContains(t, keys, "`x`")

	fields := d.FieldsMarkdown()
	for _, f := range settings.Multipliers.Fields {
		assert.Contains(t, fields, "`"+f.Key+"`")
	}
	assert.Contains(t, fields, "| `player_attack_spd` | 1.00 | 0.50 |")

	d.Open()
	assert.Contains(t, ansi.Strip(d.View()), "player_move_spd")
}

func TestThemeSwitcher_CancelReverts(t *testing.T) {
	styles.SetDefaultManager(styles.NewManager("wuchang"))
	t.Cleanup(func() { styles.SetDefaultManager(nil) })

	d := NewThemeSwitcher()
	d.Open()
	start := d.Selected()
	require.Equal(t, "wuchang", start)

	d.HandleKey("down")
	assert.Equal(t, start, d.Selected(), "already at the bottom")
	d.HandleKey("up")
	assert.NotEqual(t, start, styles.CurrentTheme().Name, "moving previews the theme")

	d.HandleKey("esc")
	assert.True(t, d.IsCancelled())
	assert.Equal(t, "wuchang", styles.CurrentTheme().Name)
}

func TestThemeSwitcher_EnterKeeps(t *testing.T) {
	styles.SetDefaultManager(styles.NewManager("dark"))
	t.Cleanup(func() { styles.SetDefaultManager(nil) })

	d := NewThemeSwitcher()
	d.Open()
	d.HandleKey("down")
	picked := d.Selected()
	d.HandleKey("enter")

	assert.False(t, d.IsOpen())
	assert.Equal(t, picked, d.GetResult())
	assert.Equal(t, picked, styles.CurrentTheme().Name)
}

func TestManager_OpenClose(t *testing.T) {
	broker := events.NewBroker()
	sub := broker.Subscribe(events.DialogOpenEvent, events.DialogCloseEvent)
	m := NewManager(broker, settings.Legacy, nil, nil)

	m.OpenDialog(HelpDialogType)
	assert.True(t, m.IsDialogOpen())
	assert.Equal(t, HelpDialogType, m.GetActiveDialog())

	m.CloseActiveDialog()
	assert.False(t, m.IsDialogOpen())

	open := <-sub
	assert.Equal(t, events.DialogOpenEvent, open.Type)
	closed := <-sub
	assert.Equal(t, events.DialogCloseEvent, closed.Type)
	assert.Equal(t, "help", closed.Payload.(events.DialogPayload).DialogID)

	assert.Nil(t, m.OpenDialog("missing"))
	assert.Nil(t, m.Result(QuitDialogType))
}
