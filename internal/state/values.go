package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Values is an opaque settings object: the language menu params or the
// settings of one screensaver. Keys are the dotted option names used by the
// player ("military.time.format", "update.period").
type Values map[string]any

// Bool reports whether key holds boolean true or the string "true".
func (v Values) Bool(key string) bool {
	switch val := v[key].(type) {
	case bool:
		return val
	case string:
		return val == "true"
	}
	return false
}

// Int returns key as an integer and whether it could be read as one.
func (v Values) Int(key string) (int, bool) {
	switch val := v[key].(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		return n, err == nil
	}
	return 0, false
}

// String returns key formatted as text; "" when absent.
func (v Values) String(key string) string {
	val, ok := v[key]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// Clone returns a shallow copy. A nil Values clones to nil.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
