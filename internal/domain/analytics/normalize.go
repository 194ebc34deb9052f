// Package analytics is the pure data pipeline behind the dashboard: numeric
// normalization, filtering, aggregation, chart projections and CSV encoding.
// Every function is total over its inputs and never mutates the dataset.
package analytics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// leadingFloat matches the numeric prefix a lenient float parser would consume.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Normalize converts raw cell text into a finite number. Whitespace (including
// non-breaking space) and grouping commas are removed first; text that does not start
// with a number yields 0.
func Normalize(raw string) float64 {
	v, _ := NormalizeChecked(raw)
	return v
}

// NormalizeChecked behaves like Normalize and also reports whether the cell was clean,
// i.e. non-empty and numeric in its entirety.
func NormalizeChecked(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == '\uFEFF' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	prefix := leadingFloat.FindString(cleaned)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range: the prefix is numeric but not representable.
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, prefix == cleaned
}

// NormalizeValue coerces an arbitrary cell value. Strings and byte slices go through
// Normalize, numbers are converted directly and nil yields 0. The loaders only
// produce text, so this serves callers holding typed cells.
func NormalizeValue(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return Normalize(x)
	case []byte:
		return Normalize(string(x))
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return Normalize(fmt.Sprint(x))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
