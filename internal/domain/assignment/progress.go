package assignment

import (
	"math"

	"github.com/carebridge/careworker-go/internal/domain/template"
)

// FieldMap holds the filled (field name -> value) pairs of an assignment.
type FieldMap map[string]interface{}

// FilledCount counts the entries whose value is neither nil nor the empty
// string. Any other value, including false and 0, counts as filled.
func (m FieldMap) FilledCount() int {
	filled := 0
	for _, v := range m {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		filled++
	}
	return filled
}

// TotalFields resolves the denominator for progress: the cached count when
// non-zero, else the template schema's field count, else a heuristic
// placeholder so progress never divides by zero. The heuristic pads the
// current map size by ten; it is an estimate, not a real count.
func TotalFields(cached int, schema template.Schema, fields FieldMap) int {
	if cached != 0 {
		return cached
	}
	if n := schema.FieldCount(); n > 0 {
		return n
	}
	filled := fields.FilledCount()
	if est := len(fields) + 10; est > filled {
		return est
	}
	return filled
}

// Percent computes round(filled/total*100), 0 when total is 0.
func Percent(filled, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(filled) / float64(total) * 100))
}

// NextStatus applies the fill-time promotion rule: an assigned form with at
// least one filled field moves to in_progress. Every other status is kept.
func NextStatus(current Status, filled int) Status {
	if current == StatusAssigned && filled > 0 {
		return StatusInProgress
	}
	return current
}

// MissingRequired returns the names of required schema fields that are
// absent or empty in the filled map, in schema order.
func MissingRequired(schema template.Schema, fields FieldMap) []string {
	var missing []string
	for _, f := range schema.RequiredFields() {
		v, ok := fields[f.Name]
		if !ok || v == nil {
			missing = append(missing, f.Name)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
