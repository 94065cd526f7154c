// Package value implements C1: flat-path navigation over a parsed JSON
// value, tabular display formatting, and sort-key coercion. Flat-path
// navigation is grounded on the teacher's app/fileloader/json_path.go object
// walking and date coercion on app/timestamps/parsing.go's layered
// date-parsing cascade; the display-key list has no teacher counterpart.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"jsonlens/internal/config"
	"jsonlens/types"
)

// displayKeys is the set of object keys preferred when projecting a
// container down to a single display string. Order matters: first match
// wins.
var displayKeys = []string{"name", "title", "label", "id", "slug", "email", "username", "code", "key", "status"}

// GetFlat navigates value by splitting path on '_' and walking object keys.
// At each step the current value must be an object (map[string]any); if the
// key is missing, or an intermediate value is not an object, resolution
// fails and (nil, false) is returned.
//
// The nested interpretation of a_b_c (keys "a","b","c") is always tried;
// a literal top-level key "a_b_c" or "a_b" is never tried as a fallback.
// This ambiguity is intentional — see spec.md §4.1 / §9.
func GetFlat(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	segments := strings.Split(path, "_")
	cur := v
	for _, seg := range segments {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Formatted is the result of SmartFormat.
type Formatted struct {
	Text      string
	IsComplex bool
}

// SmartFormat renders v for tabular display.
func SmartFormat(v any) Formatted {
	switch t := v.(type) {
	case nil:
		return Formatted{Text: "", IsComplex: false}
	case map[string]any:
		return Formatted{Text: formatObject(t), IsComplex: true}
	case []any:
		return formatArray(t)
	case string:
		return Formatted{Text: t, IsComplex: false}
	case bool:
		return Formatted{Text: strconv.FormatBool(t), IsComplex: false}
	case float64:
		return Formatted{Text: formatNumber(t), IsComplex: false}
	default:
		b, _ := json.Marshal(t)
		return Formatted{Text: string(b), IsComplex: false}
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatObject(obj map[string]any) string {
	for _, k := range displayKeys {
		if v, ok := obj[k]; ok {
			return SmartFormat(v).Text
		}
	}
	b, _ := json.Marshal(obj)
	return string(b)
}

func formatArray(arr []any) Formatted {
	if len(arr) > 0 {
		if first, ok := arr[0].(map[string]any); ok {
			for _, k := range displayKeys {
				if _, ok := first[k]; ok {
					parts := make([]string, 0, len(arr))
					for _, el := range arr {
						if obj, ok := el.(map[string]any); ok {
							if v, ok := obj[k]; ok {
								parts = append(parts, SmartFormat(v).Text)
								continue
							}
						}
						parts = append(parts, SmartFormat(el).Text)
					}
					return Formatted{Text: strings.Join(parts, ", "), IsComplex: true}
				}
			}
		}
	}
	parts := make([]string, 0, len(arr))
	for _, el := range arr {
		parts = append(parts, SmartFormat(el).Text)
	}
	return Formatted{Text: strings.Join(parts, ", "), IsComplex: true}
}

// ToSortKey coerces v to the tagged SortKey union per spec.md §4.1.
func ToSortKey(v any) types.SortKey {
	switch t := v.(type) {
	case nil:
		return types.NullKey()
	case float64:
		return types.NumberKey(t)
	case bool:
		if t {
			return types.NumberKey(1)
		}
		return types.NumberKey(0)
	case string:
		if n, err := strconv.ParseFloat(t, 64); err == nil {
			return types.NumberKey(n)
		}
		if ms, ok := parseDate(t); ok {
			return types.DateKey(ms)
		}
		return types.TextKey(t)
	case map[string]any, []any:
		b, _ := json.Marshal(t)
		return types.TextKey(string(b))
	default:
		b, _ := json.Marshal(t)
		return types.TextKey(string(b))
	}
}

// parseDate implements the layered timestamp cascade: RFC3339/Nano, date
// only (midnight UTC), and timezone-less space/T separated forms
// (interpreted in the configured default ingest timezone, UTC unless
// overridden).
func parseDate(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().UnixMilli(), true
	}
	loc := ingestLocation()
	layouts := []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05.00",
		"2006-01-02T15:04:05.0",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		"2006-01-02 15:04:05.00",
		"2006-01-02 15:04:05.0",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

func ingestLocation() *time.Location {
	name := strings.TrimSpace(config.Effective().DefaultIngestTimezone)
	switch strings.ToUpper(name) {
	case "", "UTC":
		return time.UTC
	case "LOCAL":
		return time.Local
	default:
		if l, err := time.LoadLocation(name); err == nil {
			return l
		}
		return time.UTC
	}
}

// CompareKeys implements the C7 comparator: Null always last regardless of
// ascending/descending; within a variant natural order applies; direction
// flips only the non-null comparison.
func CompareKeys(a, b types.SortKey, desc bool) bool {
	if a.Kind == types.KindNull && b.Kind == types.KindNull {
		return false
	}
	if a.Kind == types.KindNull {
		return false
	}
	if b.Kind == types.KindNull {
		return true
	}
	less := lessNonNull(a, b)
	if desc {
		return !less && !equalNonNull(a, b)
	}
	return less
}

func lessNonNull(a, b types.SortKey) bool {
	switch a.Kind {
	case types.KindNumber:
		return a.Number < b.Number
	case types.KindDate:
		return a.DateMs < b.DateMs
	default:
		if a.TextLower != b.TextLower {
			return a.TextLower < b.TextLower
		}
		return a.Text < b.Text
	}
}

func equalNonNull(a, b types.SortKey) bool {
	switch a.Kind {
	case types.KindNumber:
		return a.Number == b.Number
	case types.KindDate:
		return a.DateMs == b.DateMs
	default:
		return a.TextLower == b.TextLower && a.Text == b.Text
	}
}

// Heterogeneous reports whether keys span more than one non-Null variant,
// which per spec.md §4.7 forces a fallback to Text coercion for all keys.
func Heterogeneous(keys []types.SortKey) bool {
	seen := map[types.SortKeyKind]bool{}
	for _, k := range keys {
		if k.Kind == types.KindNull {
			continue
		}
		seen[k.Kind] = true
	}
	return len(seen) > 1
}

// CoerceAllText re-coerces every non-Null key to Text using its display
// form, preserving Null keys as-is.
func CoerceAllText(keys []types.SortKey) []types.SortKey {
	out := make([]types.SortKey, len(keys))
	for i, k := range keys {
		if k.Kind == types.KindNull {
			out[i] = k
			continue
		}
		out[i] = types.TextKey(displayForm(k))
	}
	return out
}

func displayForm(k types.SortKey) string {
	switch k.Kind {
	case types.KindNumber:
		return formatNumber(k.Number)
	case types.KindDate:
		return time.UnixMilli(k.DateMs).UTC().Format(time.RFC3339)
	default:
		return k.Text
	}
}
