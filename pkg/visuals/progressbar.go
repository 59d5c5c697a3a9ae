package visuals

import (
	"fmt"
	"html/template"
)

// BarStyle holds the CSS classes of a progress bar.
type BarStyle struct {
	Foreground string
	Background string
}

// DefaultBarStyle matches the w3.css palette used by the site templates.
var DefaultBarStyle = BarStyle{
	Foreground: "w3-deep-purple",
	Background: "w3-black",
}

// RenderProgressBar builds a w3.css style bar whose inner width is value as
// a percentage of maxValue, capped at 100%. The value itself is printed
// inside the bar.
//
// maxValue defaults to 100 when nil or zero. Both operands must be Go
// numbers; for anything else the second result is false.
func RenderProgressBar(value, maxValue any, fgClass, bgClass string) (template.HTML, bool) {
	val, ok := numericValue(value)
	if !ok {
		return "", false
	}

	limit := 100.0
	if !isNilish(maxValue) {
		m, ok := numericValue(maxValue)
		if !ok {
			return "", false
		}
		if m != 0 {
			limit = m
		}
	}

	width := "100"
	if val < limit {
		w, ok := truncated(100 * val / limit)
		if !ok {
			return "", false
		}
		width = w
	}

	return template.HTML(fmt.Sprintf(
		`<div class="%s"><div class="%s" style="width:%s%%">%s</div></div>`,
		template.HTMLEscapeString(bgClass),
		template.HTMLEscapeString(fgClass),
		width,
		formatNumber(value),
	)), true
}

// ProgressBar is RenderProgressBar for templates: values that cannot be
// drawn are handed back unchanged.
func ProgressBar(value, maxValue any, fgClass, bgClass string) any {
	bar, ok := RenderProgressBar(value, maxValue, fgClass, bgClass)
	if !ok {
		return value
	}
	return bar
}
