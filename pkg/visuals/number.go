package visuals

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FormatFloat renders f as the shortest string that round-trips, always
// keeping a fractional part for integral values ("30.0") and switching to
// exponent notation outside 1e-4 <= |f| < 1e16 ("1e+16", "1.5e-05").
func FormatFloat(f float64) string {
	return formatFloatBits(f, 64)
}

func formatFloatBits(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatNumber renders a numeric value the way it was handed in: integers
// stay integers, floats go through FormatFloat.
func formatNumber(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloatBits(rv.Float(), 32)
	default:
		return FormatFloat(rv.Float())
	}
}
