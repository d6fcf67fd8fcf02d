package utils

import (
	"time"

	"github.com/username/finreport/src/models"
)

// ConvertTimestamps walks an arbitrarily nested value and replaces every
// time.Time (and models.ISOTime) with its ISO-8601 string form. Maps and
// slices are rebuilt recursively; everything else passes through unchanged.
func ConvertTimestamps(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = ConvertTimestamps(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ConvertTimestamps(item)
		}
		return out
	case time.Time:
		return val.Format(models.ISOLayout)
	case models.ISOTime:
		return val.Format(models.ISOLayout)
	default:
		return v
	}
}
