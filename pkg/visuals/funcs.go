package visuals

import "html/template"

// FuncMap exposes the helpers to html/template:
//
//	{{valminmax .Value .Min .Max}}
//	{{percminmax .Value .Min .Max}}
//	{{progressbar .Value .Max}} or {{progressbar .Value .Max "fg" "bg"}}
//	{{divide .Protein .Kcal}}
//
// divide renders its quotient with FormatFloat, so 30/1 shows as 30.0.
func FuncMap(style BarStyle) template.FuncMap {
	return template.FuncMap{
		"valminmax":  ValMinMax,
		"percminmax": PercentRange,
		"progressbar": func(value, maxValue any, classes ...string) any {
			fg, bg := style.Foreground, style.Background
			if len(classes) > 0 {
				fg = classes[0]
			}
			if len(classes) > 1 {
				bg = classes[1]
			}
			return ProgressBar(value, maxValue, fg, bg)
		},
		"divide": func(num, den any) (any, error) {
			q, err := Divide(num, den)
			if f, ok := q.(float64); ok {
				return FormatFloat(f), err
			}
			return q, err
		},
	}
}
