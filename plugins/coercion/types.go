package coercion

import (
	"strconv"
	"time"
)

// CoerceFunc converts a value to a target type. ok is false when the value
// cannot be represented in that type.
type CoerceFunc func(value any) (coerced any, ok bool)

// coercers is the built-in type table. nil passes through every coercer:
// absence is a validation concern, not a coercion one.
var coercers = map[string]CoerceFunc{
	"any":     func(v any) (any, bool) { return v, true },
	"string":  toString,
	"integer": toInteger,
	"float":   toFloat,
	"boolean": toBoolean,
	"time":    toTime,
}

func toString(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case string:
		return val, true
	case []byte:
		return string(val), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	}
	return nil, false
}

func toInteger(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case int:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case uint:
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case float64:
		if val == float64(int(val)) {
			return int(val), true
		}
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n, true
		}
	}
	return nil, false
}

func toFloat(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, true
		}
	}
	return nil, false
}

func toBoolean(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case bool:
		return val, true
	case string:
		switch val {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	case int:
		switch val {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return nil, false
}

func toTime(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case time.Time:
		return val, true
	case string:
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t, true
		}
	}
	return nil, false
}
