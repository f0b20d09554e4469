package settings

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dmg_mult.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustSet(t *testing.T, r Record, key string, v float64) Record {
	t.Helper()
	out, ok := r.Set(key, v)
	require.True(t, ok, "unknown key %s", key)
	return out
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
		want  float64
	}{
		{name: "truncates instead of rounding", key: "enemy_phys_mult", value: 1.2367, want: 1.23},
		{name: "tiny value truncates to zero", key: "enemy_phys_mult", value: 0.005, want: 0},
		{name: "negative raised to zero", key: "player_health_mult", value: -3.5, want: 0},
		{name: "attack speed floor", key: "player_attack_spd", value: 0.2, want: 0.5},
		{name: "attack speed just under floor", key: "player_attack_spd", value: 0.499, want: 0.5},
		{name: "attack speed above floor", key: "player_attack_spd", value: 0.759, want: 0.75},
		{name: "two decimals kept as written", key: "player_move_spd", value: 1.15, want: 1.15},
		{name: "hundredths that float math would lose", key: "player_move_spd", value: 1.14, want: 1.14},
		{name: "no upper bound", key: "enemy_elem_mult", value: 250.999, want: 250.99},
		{name: "NaN falls back to minimum", key: "player_attack_spd", value: math.NaN(), want: 0.5},
		{name: "infinity falls back to minimum", key: "enemy_status_mult", value: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mustSet(t, Defaults(Multipliers), tt.key, tt.value)
			got, ok := Clamp(rec).Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClamp_Idempotent(t *testing.T) {
	values := []float64{-10, -0.001, 0, 0.004, 0.01, 0.29, 0.499, 0.5, 0.57, 1, 1.005, 1.15, 1.2367, 2.675, 99.999, 1e6 + 0.129}

	for _, key := range Multipliers.Keys() {
		for _, v := range values {
			once := Clamp(mustSet(t, Defaults(Multipliers), key, v))
			twice := Clamp(once)
			assert.True(t, once.Equal(twice), "%s=%v: %v != %v", key, v, once.Values(), twice.Values())
		}
	}
}

func TestClamp_MinimumEnforced(t *testing.T) {
	rec := Defaults(Multipliers)
	for _, key := range Multipliers.Keys() {
		rec = mustSet(t, rec, key, -1)
	}
	clamped := Clamp(rec)

	for _, f := range Multipliers.Fields {
		got, _ := clamped.Get(f.Key)
		if f.Key == "player_attack_spd" {
			assert.Equal(t, 0.5, got)
		} else {
			assert.Equal(t, 0.0, got, f.Key)
		}
		assert.False(t, math.Signbit(got), "%s should not be negative zero", f.Key)
	}
}

func TestDefaults(t *testing.T) {
	for _, v := range Defaults(Multipliers).Values() {
		assert.Equal(t, 1.0, v)
	}

	legacy, ok := Defaults(Legacy).Get("mult")
	require.True(t, ok)
	assert.Equal(t, 0.33, legacy)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       map[string]float64
		wantIssues []IssueKind
	}{
		{
			name:  "comments and blanks only",
			input: "# comment\n\n;also comment\n",
			want:  map[string]float64{},
		},
		{
			name:  "partial file",
			input: "player_move_spd=2.50\n",
			want:  map[string]float64{"player_move_spd": 2.5},
		},
		{
			name:       "garbage value",
			input:      "enemy_phys_mult=notanumber\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{BadNumber},
		},
		{
			name:       "unknown key",
			input:      "unknown_field=5.00\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{UnknownKey},
		},
		{
			name:  "whitespace trimmed around key and value",
			input: "   player_phys_mult \t=  1.75  \n",
			want:  map[string]float64{"player_phys_mult": 1.75},
		},
		{
			name:  "indented comment",
			input: "   # player_phys_mult=9\n\t; enemy_phys_mult=9\n",
			want:  map[string]float64{},
		},
		{
			name:       "line without equals",
			input:      "player_phys_mult 2\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{MalformedLine},
		},
		{
			name:       "empty key and empty value",
			input:      "=2\nplayer_phys_mult=\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{EmptyKey, EmptyValue},
		},
		{
			name:       "split on first equals only",
			input:      "player_phys_mult=2=3\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{BadNumber},
		},
		{
			name:  "clamped and truncated after parse",
			input: "player_attack_spd=0.1\nenemy_elem_mult=-2\nplayer_health_mult=3.14159\n",
			want: map[string]float64{
				"player_attack_spd":  0.5,
				"enemy_elem_mult":    0,
				"player_health_mult": 3.14,
			},
		},
		{
			name:  "last assignment wins",
			input: "player_move_spd=1.10\nplayer_move_spd=1.20\n",
			want:  map[string]float64{"player_move_spd": 1.2},
		},
		{
			name:  "signed values and windows line endings",
			input: "player_move_spd=+1.5\r\nenemy_phys_mult=-0.5\r\n",
			want:  map[string]float64{"player_move_spd": 1.5, "enemy_phys_mult": 0},
		},
		{
			name:       "infinity rejected",
			input:      "enemy_phys_mult=inf\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{BadNumber},
		},
		{
			name:       "hex float rejected",
			input:      "enemy_phys_mult=0x1p1\nplayer_move_spd=0X2\n",
			want:       map[string]float64{},
			wantIssues: []IssueKind{BadNumber, BadNumber},
		},
		{
			name:  "exponent accepted",
			input: "enemy_phys_mult=1.5e0\n",
			want:  map[string]float64{"enemy_phys_mult": 1.5},
		},
		{
			name:  "last line without newline",
			input: "player_move_spd=1.30",
			want:  map[string]float64{"player_move_spd": 1.3},
		},
		{
			name:  "byte order mark",
			input: "\ufeffenemy_phys_mult=0.80\n",
			want:  map[string]float64{"enemy_phys_mult": 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, report := Parse(Multipliers, strings.NewReader(tt.input))

			for _, f := range Multipliers.Fields {
				got, _ := rec.Get(f.Key)
				want, set := tt.want[f.Key]
				if !set {
					want = ClampValue(f, f.Default)
				}
				assert.Equal(t, want, got, f.Key)
			}

			var kinds []IssueKind
			for _, issue := range report.Issues {
				kinds = append(kinds, issue.Kind)
			}
			assert.Equal(t, tt.wantIssues, kinds)
			assert.NoError(t, report.Err)
		})
	}
}

func TestParse_IssueLineNumbers(t *testing.T) {
	input := "# header\nenemy_phys_mult=1.10\n\nbogus\nplayer_move_spd=fast\n"
	_, report := Parse(Multipliers, strings.NewReader(input))

	require.Len(t, report.Issues, 2)
	assert.Equal(t, 4, report.Issues[0].Line)
	assert.Equal(t, MalformedLine, report.Issues[0].Kind)
	assert.Equal(t, 5, report.Issues[1].Line)
	assert.Equal(t, BadNumber, report.Issues[1].Kind)
	assert.Equal(t, []string{"enemy_phys_mult"}, report.Applied)
	assert.False(t, report.OK())
}

func TestParse_VeryLongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	input := "player_move_spd=2.50\n# " + long + "\nenemy_phys_mult=3.00\nplayer_phys_mult=" + long + "\n"

	rec, report := Parse(Multipliers, strings.NewReader(input))
	require.NoError(t, report.Err)

	move, _ := rec.Get("player_move_spd")
	phys, _ := rec.Get("enemy_phys_mult")
	assert.Equal(t, 2.5, move)
	assert.Equal(t, 3.0, phys)
	assert.Equal(t, []string{"player_move_spd", "enemy_phys_mult"}, report.Applied)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, 4, report.Issues[0].Line)
	assert.Equal(t, BadNumber, report.Issues[0].Kind)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.cfg")

	rec, report := LoadReport(Multipliers, path)
	assert.True(t, report.Missing)
	assert.NoError(t, report.Err)
	assert.True(t, rec.Equal(Defaults(Multipliers)))
	assert.True(t, Load(Multipliers, path).Equal(Defaults(Multipliers)))
}

func TestLoad_Unreadable(t *testing.T) {
	// A directory cannot be read as a settings file.
	dir := t.TempDir()

	rec, report := LoadReport(Multipliers, dir)
	assert.False(t, report.Missing)
	assert.True(t, rec.Equal(Defaults(Multipliers)))
}

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmg_mult.cfg")
	require.NoError(t, Save(path, Defaults(Multipliers)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	require.Len(t, lines, len(Multipliers.Fields)+2, "header, fields, trailing newline")
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Equal(t, "enemy_phys_mult=1.00", lines[1])
	assert.Equal(t, "player_attack_spd=1.00", lines[10])
	assert.Equal(t, "", lines[11])
}

func TestSave_LegacyFormat(t *testing.T) {
	assert.Equal(t, "# Wuchang damage scaler multiplier\nmult=0.33\n", Format(Defaults(Legacy)))
}

func TestSave_ReclampsBeforeWriting(t *testing.T) {
	rec := mustSet(t, Defaults(Multipliers), "player_attack_spd", 0.129)
	rec = mustSet(t, rec, "enemy_phys_mult", 2.999)

	out := Format(rec)
	assert.Contains(t, out, "\nplayer_attack_spd=0.50\n")
	assert.Contains(t, out, "\nenemy_phys_mult=2.99\n")
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "dmg_mult.cfg")
	assert.Error(t, Save(path, Defaults(Multipliers)))
}

func TestSave_NoSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmg_mult.cfg")
	require.NoError(t, os.WriteFile(path, []byte("keep me\n"), 0o644))

	assert.Error(t, Save(path, Record{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 0.07, 0.29, 0.5, 0.57, 1, 1.1, 1.15, 1.2367, 2.675, 9.99, 123.45, 100000.01}

	for _, v := range values {
		rec := Defaults(Multipliers)
		for i, key := range Multipliers.Keys() {
			// spread the values so each field sees something different
			rec = mustSet(t, rec, key, v+float64(i)*0.13)
		}
		rec = Clamp(rec)

		path := filepath.Join(t.TempDir(), "dmg_mult.cfg")
		require.NoError(t, Save(path, rec))

		loaded, report := LoadReport(Multipliers, path)
		assert.True(t, report.OK(), "report: %+v", report)
		assert.True(t, rec.Equal(loaded), "%v != %v", rec.Values(), loaded.Values())
		assert.Equal(t, Format(rec), Format(loaded))
	}
}

func TestRecord_SetIsCopy(t *testing.T) {
	base := Defaults(Multipliers)
	changed := mustSet(t, base, "player_move_spd", 3)

	orig, _ := base.Get("player_move_spd")
	assert.Equal(t, 1.0, orig)
	got, _ := changed.Get("player_move_spd")
	assert.Equal(t, 3.0, got)

	_, ok := base.Set("nope", 1)
	assert.False(t, ok)
}

func TestRecord_EqualAcrossSchemas(t *testing.T) {
	assert.False(t, Defaults(Multipliers).Equal(Defaults(Legacy)))
	assert.True(t, Defaults(Legacy).Equal(Defaults(Legacy)))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.00", FormatValue(1))
	assert.Equal(t, "0.50", FormatValue(0.5))
	assert.Equal(t, "1234567.89", FormatValue(1234567.89))
}
