package visuals

import (
	"database/sql/driver"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ParseFloat converts an arbitrary template value to a float64.
// The boolean reports whether the conversion succeeded; nil, typed nil
// pointers, booleans and non-numeric strings are all reported as absent.
func ParseFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		return parseFloatString(t)
	case []byte:
		return parseFloatString(string(t))
	case driver.Valuer:
		// sql.NullFloat64 and friends, invalid values come back as nil
		if isNilish(v) {
			return 0, false
		}
		inner, err := t.Value()
		if err != nil {
			return 0, false
		}
		return ParseFloat(inner)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.String:
		// json.Number and named string types
		return parseFloatString(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0, false
		}
		return ParseFloat(rv.Elem().Interface())
	}
	return 0, false
}

// parseFloatString accepts decimal literals only; strconv would also take
// hex floats such as "0x1p4".
func parseFloatString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericValue is stricter than ParseFloat: only Go number kinds (or
// pointers to them) count, strings never do.
func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// isNilish reports whether v is nil or a typed nil pointer.
func isNilish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// percentOf returns trunc(base/target) formatted as an integer. Zero
// targets and non-finite ratios yield false.
func percentOf(base float64, target any) (string, bool) {
	t, ok := ParseFloat(target)
	if !ok || t == 0 {
		return "", false
	}
	return truncated(base / t)
}

// truncated formats x truncated toward zero, without a fractional part.
func truncated(x float64) (string, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", false
	}
	t := math.Trunc(x)
	if t == 0 {
		// drop the sign of -0
		t = 0
	}
	return strconv.FormatFloat(t, 'f', 0, 64), true
}
