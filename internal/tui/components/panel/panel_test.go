package panel

import (
	"strings"
	"testing"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Sink = (*settings.Store)(nil)

type fakeSink struct {
	rec    settings.Record
	saves  int
	resets int
}

func newFakeSink(schema *settings.Schema) *fakeSink {
	return &fakeSink{rec: settings.Defaults(schema)}
}

func (f *fakeSink) Record() settings.Record { return f.rec }

func (f *fakeSink) Commit(key string, v float64) float64 {
	next, ok := f.rec.Set(key, v)
	if !ok {
		return 0
	}
	f.rec = settings.Clamp(next)
	got, _ := f.rec.Get(key)
	return got
}

func (f *fakeSink) Save() bool {
	f.saves++
	return true
}

func (f *fakeSink) Reset() bool {
	f.resets++
	f.rec = settings.Defaults(f.rec.Schema())
	return true
}

func press(p *Panel, keys ...string) {
	for _, k := range keys {
		p.HandleKey(k)
	}
}

func value(t *testing.T, s *fakeSink, key string) float64 {
	t.Helper()
	v, ok := s.rec.Get(key)
	require.True(t, ok, key)
	return v
}

func TestPanel_NavigationWraps(t *testing.T) {
	p := New(newFakeSink(settings.Multipliers))
	rows := len(settings.Multipliers.Fields) + buttonRows

	press(p, "up")
	assert.Equal(t, rows-1, p.Selected())

	press(p, "down")
	assert.Equal(t, 0, p.Selected())

	press(p, "j", "j", "k")
	assert.Equal(t, 1, p.Selected())
}

func TestPanel_NudgeStaysOnGrid(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)

	press(p, "+", "+", "+")
	assert.Equal(t, 1.15, value(t, sink, "enemy_phys_mult"))

	press(p, "-")
	assert.Equal(t, 1.1, value(t, sink, "enemy_phys_mult"))

	for range 30 {
		press(p, "-")
	}
	assert.Equal(t, 0.0, value(t, sink, "enemy_phys_mult"))
}

func TestPanel_NudgeRespectsFloor(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)
	for p.Selected() != settings.Multipliers.Index("player_attack_spd") {
		press(p, "down")
	}

	for range 20 {
		press(p, "left")
	}
	assert.Equal(t, 0.5, value(t, sink, "player_attack_spd"))
}

func TestPanel_EditCommits(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)
	press(p, "down")

	press(p, "enter")
	require.True(t, p.Editing())

	press(p, "ctrl+u", "2", ".", "5", "x", "enter")
	assert.False(t, p.Editing())
	assert.Equal(t, 2.5, value(t, sink, "enemy_elem_mult"))
}

func TestPanel_EditClampsNegative(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)

	press(p, "enter", "ctrl+u", "-", "3", "enter")
	assert.Equal(t, 0.0, value(t, sink, "enemy_phys_mult"))
}

func TestPanel_EditRejectsGarbage(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)

	press(p, "enter", "ctrl+u", "-", "enter")
	assert.True(t, p.Editing(), "editor stays open on a bad number")
	assert.NotEmpty(t, p.State().Error)

	press(p, "esc")
	assert.False(t, p.Editing())
	assert.Empty(t, p.State().Error)
	assert.Equal(t, 1.0, value(t, sink, "enemy_phys_mult"))
}

func TestPanel_Buttons(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)
	fields := len(settings.Multipliers.Fields)

	for range fields {
		press(p, "down")
	}
	press(p, "enter")
	assert.Equal(t, 1, sink.saves)
	assert.False(t, p.Editing())

	press(p, "+")
	assert.True(t, sink.rec.Equal(settings.Defaults(settings.Multipliers)), "nudge on a button does nothing")

	press(p, "down", "space")
	assert.Equal(t, 1, sink.resets)

	press(p, "s", "r")
	assert.Equal(t, 2, sink.saves)
	assert.Equal(t, 2, sink.resets)
}

func TestPanel_LegacySchema(t *testing.T) {
	sink := newFakeSink(settings.Legacy)
	p := New(sink)

	press(p, "+")
	assert.Equal(t, 0.38, value(t, sink, "mult"))

	press(p, "down", "down", "down")
	assert.Equal(t, 0, p.Selected())
}

func TestRender(t *testing.T) {
	rec := settings.Defaults(settings.Multipliers)
	rec, _ = rec.Set("player_move_spd", 1.25)

	out := ansi.Strip(Render(rec, ViewState{Selected: 0, Help: "help line"}))

	for _, f := range settings.Multipliers.Fields {
		assert.Contains(t, out, f.Label)
	}
	assert.Contains(t, out, "1.25")
	assert.Contains(t, out, "min 0.50")
	assert.Contains(t, out, "Save")
	assert.Contains(t, out, "Reset")
	assert.Contains(t, out, "help line")
	assert.NotContains(t, out, "unsaved")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Enemy physical damage")
	assert.Contains(t, lines[0], "1.00")
}

func TestRender_States(t *testing.T) {
	rec := settings.Defaults(settings.Legacy)

	dirty := ansi.Strip(Render(rec, ViewState{Dirty: true}))
	assert.Contains(t, dirty, "unsaved")

	editing := ansi.Strip(Render(rec, ViewState{Editing: true, Editor: "0.4"}))
	assert.Contains(t, editing, "0.4")
	assert.NotContains(t, editing, "0.33")
	assert.Contains(t, editing, "esc cancel")

	failed := ansi.Strip(Render(rec, ViewState{Error: "bad"}))
	assert.Contains(t, failed, "bad")

	assert.Empty(t, Render(settings.Record{}, ViewState{}))
}

func TestPanel_ViewMatchesRender(t *testing.T) {
	sink := newFakeSink(settings.Multipliers)
	p := New(sink)
	p.SetDirtyFunc(func() bool { return true })

	assert.Equal(t, Render(sink.rec, p.State()), p.View())
	assert.Contains(t, ansi.Strip(p.View()), "unsaved")
}
