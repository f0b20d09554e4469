package settings

// DefaultPath is where the mod keeps its multipliers, relative to the game directory.
const DefaultPath = "ue4ss/Mods/WuchangDamageScaler/dmg_mult.cfg"

// Field describes one multiplier: its file key, how the panel labels it and
// the bounds every stored value must respect.
type Field struct {
	Key         string
	Label       string
	Description string
	Default     float64
	Min         float64
}

// Schema is the fixed set of fields a settings file may carry, in file order.
type Schema struct {
	Name   string
	Header string
	Fields []Field
}

// Multipliers is the ten-field layout used by current releases of the mod.
var Multipliers = &Schema{
	Name:   "multipliers",
	Header: "# Wuchang damage scaler multipliers",
	Fields: []Field{
		{Key: "enemy_phys_mult", Label: "Enemy physical damage", Description: "Scales physical damage dealt by enemies", Default: 1, Min: 0},
		{Key: "enemy_elem_mult", Label: "Enemy elemental damage", Description: "Scales elemental damage dealt by enemies", Default: 1, Min: 0},
		{Key: "enemy_status_mult", Label: "Enemy status buildup", Description: "Scales status effect buildup inflicted by enemies", Default: 1, Min: 0},
		{Key: "player_phys_mult", Label: "Player physical damage", Description: "Scales physical damage dealt by the player", Default: 1, Min: 0},
		{Key: "player_elem_mult", Label: "Player elemental damage", Description: "Scales elemental damage dealt by the player", Default: 1, Min: 0},
		{Key: "player_status_mult", Label: "Player status buildup", Description: "Scales status effect buildup inflicted by the player", Default: 1, Min: 0},
		{Key: "player_health_mult", Label: "Player health", Description: "Scales the player's maximum health", Default: 1, Min: 0},
		{Key: "player_stamina_mult", Label: "Player stamina", Description: "Scales the player's maximum stamina", Default: 1, Min: 0},
		{Key: "player_move_spd", Label: "Player move speed", Description: "Scales the player's movement speed", Default: 1, Min: 0},
		// Below 0.50 the game's animation graph stalls.
		{Key: "player_attack_spd", Label: "Player attack speed", Description: "Scales the player's attack animation rate", Default: 1, Min: 0.5},
	},
}

// Legacy is the single-field layout of the first release, kept so old files
// can still be inspected and rewritten.
var Legacy = &Schema{
	Name:   "legacy",
	Header: "# Wuchang damage scaler multiplier",
	Fields: []Field{
		{Key: "mult", Label: "Enemy damage multiplier", Description: "Scales all damage dealt by enemies", Default: 0.33, Min: 0},
	},
}

// Schemas lists every known layout by name.
var Schemas = map[string]*Schema{
	Multipliers.Name: Multipliers,
	Legacy.Name:      Legacy,
}

// Index returns the position of key in the schema, or -1.
func (s *Schema) Index(key string) int {
	for i, f := range s.Fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Field returns the field named key.
func (s *Schema) Field(key string) (Field, bool) {
	if i := s.Index(key); i >= 0 {
		return s.Fields[i], true
	}
	return Field{}, false
}

// Keys returns the field keys in file order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}
