package visuals

import (
	"fmt"
	"html/template"
)

// ValMinMax renders value followed by its percentage of the minimum and
// maximum targets inside a <small> tag, e.g. "30.0<small> (30%-20%)</small>".
//
// An uncoercible value renders as the empty string. Targets that are
// missing, zero or non-numeric are dropped from the brackets; with neither
// target present the bare value is returned.
func ValMinMax(value, minTarget, maxTarget any) template.HTML {
	val, ok := ParseFloat(value)
	if !ok {
		return ""
	}

	minPct, hasMin := percentOf(100*val, minTarget)
	maxPct, hasMax := percentOf(100*val, maxTarget)

	var contents string
	switch {
	case hasMin && hasMax:
		contents = fmt.Sprintf("%s<small> (%s%%-%s%%)</small>", FormatFloat(val), minPct, maxPct)
	case hasMin:
		contents = fmt.Sprintf("%s<small> (%s%%)</small>", FormatFloat(val), minPct)
	case hasMax:
		contents = fmt.Sprintf("%s<small> (%s%%)</small>", FormatFloat(val), maxPct)
	default:
		contents = FormatFloat(val)
	}

	// Only numbers and literals are interpolated above.
	return template.HTML(contents)
}

// PercentRange returns "x%-y%" where x and y are value as a percentage of
// minTarget and maxTarget. Either side is left blank when its target is
// unusable, so the result is "%-%" when neither is set.
func PercentRange(value, minTarget, maxTarget any) string {
	val, ok := ParseFloat(value)
	if !ok {
		return ""
	}
	num := val * 100

	minPct, _ := percentOf(num, minTarget)
	maxPct, _ := percentOf(num, maxTarget)
	return minPct + "%-" + maxPct + "%"
}
