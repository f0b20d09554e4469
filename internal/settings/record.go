package settings

import (
	"math"
	"strconv"
	"strings"
)

// Record holds one value per schema field. It is a value type: Set returns
// a modified copy and never touches the receiver.
type Record struct {
	schema *Schema
	values []float64
}

// Defaults returns a record with every field at its default, clamped.
func Defaults(schema *Schema) Record {
	r := Record{schema: schema, values: make([]float64, len(schema.Fields))}
	for i, f := range schema.Fields {
		r.values[i] = f.Default
	}
	return Clamp(r)
}

// Schema returns the layout the record is bound to.
func (r Record) Schema() *Schema {
	return r.schema
}

// Get returns the value of key and whether the schema knows it.
func (r Record) Get(key string) (float64, bool) {
	if r.schema == nil {
		return 0, false
	}
	i := r.schema.Index(key)
	if i < 0 {
		return 0, false
	}
	return r.values[i], true
}

// At returns the value of the i-th field.
func (r Record) At(i int) float64 {
	return r.values[i]
}

// Set returns a copy with key set to v. The copy is not clamped.
// Unknown keys leave the record unchanged and report false.
func (r Record) Set(key string, v float64) (Record, bool) {
	if r.schema == nil {
		return r, false
	}
	i := r.schema.Index(key)
	if i < 0 {
		return r, false
	}
	out := r.clone()
	out.values[i] = v
	return out, true
}

// Values returns the record as a key/value map.
func (r Record) Values() map[string]float64 {
	if r.schema == nil {
		return nil
	}
	out := make(map[string]float64, len(r.values))
	for i, f := range r.schema.Fields {
		out[f.Key] = r.values[i]
	}
	return out
}

// Equal reports whether both records share a schema and hold the same values.
func (r Record) Equal(other Record) bool {
	if r.schema != other.schema || len(r.values) != len(other.values) {
		return false
	}
	for i := range r.values {
		if r.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (r Record) clone() Record {
	values := make([]float64, len(r.values))
	copy(values, r.values)
	return Record{schema: r.schema, values: values}
}

// Clamp raises every field to at least its minimum and truncates it toward
// zero to two decimals. Clamp(Clamp(r)) equals Clamp(r).
func Clamp(r Record) Record {
	if r.schema == nil {
		return r
	}
	out := r.clone()
	for i, f := range r.schema.Fields {
		out.values[i] = ClampValue(f, r.values[i])
	}
	return out
}

// ClampValue applies a field's bounds to a single value. Values that are not
// finite fall back to the minimum.
func ClampValue(f Field, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = f.Min
	}
	return Truncate2(math.Max(v, f.Min))
}

// Truncate2 cuts v to two decimals toward zero.
//
// It works on the shortest decimal form of v rather than computing
// trunc(v*100)/100. The float formula loses a hundredth on values such as
// 1.14 (v*100 is 113.99999...), so a saved file would not read back as the
// same record.
func Truncate2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s) > dot+3 {
		s = s[:dot+3]
	}
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.Trunc(v*100) / 100
	}
	if out == 0 {
		// -0.00 would print with a sign.
		return 0
	}
	return out
}
