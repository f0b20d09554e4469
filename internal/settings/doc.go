// Package settings owns the multiplier record and its plain-text file.
//
// The file is line oriented:
//
//	# Wuchang damage scaler multipliers
//	enemy_phys_mult=1.00
//	player_attack_spd=0.50
//
// Blank lines and lines starting with '#' or ';' are comments. Data lines are
// split on the first '=' and both sides are trimmed. Unknown keys, empty
// sides and values that are not numbers are skipped; the field keeps its
// default.
//
// Every value is clamped to its field minimum and truncated (not rounded) to
// two decimals on load, on save and on every committed edit. Output always
// uses a '.' decimal point and exactly two fractional digits, so a saved
// file loads back to the same record.
//
// Nothing in this package surfaces a failure to the caller that could stop
// the panel. Parse and LoadReport return a Report describing every skipped
// line; Store collapses those into log lines and boolean results.
//
// Example usage:
//
//	store := settings.NewStore(settings.DefaultPath, settings.Multipliers, logger)
//	store.Refresh()
//	store.Commit("player_move_spd", 1.25)
//	if !store.Save() {
//		// in-memory values are untouched
//	}
package settings
