package validation

import (
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/checkit"
)

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case map[any]any:
		return len(val) == 0
	}
	return false
}

func isType(v any, tag string) bool {
	if v == nil {
		return false
	}
	switch tag {
	case "string":
		_, ok := v.(string)
		return ok
	case "integer":
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	case "float":
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "array":
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice, reflect.Array:
			return true
		}
		return false
	case "map":
		if _, ok := v.(checkit.Messages); ok {
			return true
		}
		return reflect.ValueOf(v).Kind() == reflect.Map
	case "time":
		_, ok := v.(time.Time)
		return ok
	}
	return false
}

// lengthOf returns the length of strings (in runes), slices, arrays and
// maps. ok is false for anything else.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}
