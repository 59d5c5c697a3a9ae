package visuals

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"html/template"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type grams float64

func TestParseFloat(t *testing.T) {
	f := 2.5
	var nilPtr *float64
	var nilNull *sql.NullFloat64

	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "float64", input: 1.25, want: 1.25, wantOK: true},
		{name: "int", input: 7, want: 7, wantOK: true},
		{name: "uint8", input: uint8(200), want: 200, wantOK: true},
		{name: "float32", input: float32(0.5), want: 0.5, wantOK: true},
		{name: "named float", input: grams(12), want: 12, wantOK: true},
		{name: "numeric string", input: " 42.5 ", want: 42.5, wantOK: true},
		{name: "scientific string", input: "1e3", want: 1000, wantOK: true},
		{name: "bytes", input: []byte("3"), want: 3, wantOK: true},
		{name: "json number", input: json.Number("8.5"), want: 8.5, wantOK: true},
		{name: "pointer", input: &f, want: 2.5, wantOK: true},
		{name: "valid null float", input: sql.NullFloat64{Float64: 4, Valid: true}, want: 4, wantOK: true},
		{name: "invalid null float", input: sql.NullFloat64{}, wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "typed nil pointer", input: nilPtr, wantOK: false},
		{name: "nil valuer pointer", input: nilNull, wantOK: false},
		{name: "word", input: "abc", wantOK: false},
		{name: "hex float", input: "0x1p4", wantOK: false},
		{name: "signed hex", input: "-0X10", wantOK: false},
		{name: "padded hex", input: " +0x1 ", wantOK: false},
		{name: "leading zero decimal", input: "007.5", want: 7.5, wantOK: true},
		{name: "empty string", input: "", wantOK: false},
		{name: "bool", input: true, wantOK: false},
		{name: "struct", input: struct{}{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{30, "30.0"},
		{12.5, "12.5"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-3, "-3.0"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.000015, "1.5e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.input))
		})
	}
}

func TestValMinMax(t *testing.T) {
	f := 50.0
	var noTarget *float64

	tests := []struct {
		name   string
		value  any
		min    any
		max    any
		expect template.HTML
	}{
		{name: "no targets", value: 12.5, expect: "12.5"},
		{name: "integral value keeps fraction", value: 30, expect: "30.0"},
		{name: "non numeric value", value: "abc", min: 10, max: 20, expect: ""},
		{name: "hex string value", value: "0x1p4", max: 100, expect: ""},
		{name: "both targets", value: 30, min: 100, max: 150, expect: "30.0<small> (30%-20%)</small>"},
		{name: "string inputs", value: "30", min: "100", max: "150", expect: "30.0<small> (30%-20%)</small>"},
		{name: "min only", value: 30, min: 100, expect: "30.0<small> (30%)</small>"},
		{name: "max only reports max percentage", value: 30, max: 150, expect: "30.0<small> (20%)</small>"},
		{name: "zero min target", value: 30, min: 0, max: 150, expect: "30.0<small> (20%)</small>"},
		{name: "non numeric targets", value: 30, min: "lots", max: "more", expect: "30.0"},
		{name: "zero percent is still shown", value: 0, min: 100, max: 150, expect: "0.0<small> (0%-0%)</small>"},
		{name: "truncates toward zero", value: 1, min: 3, expect: "1.0<small> (33%)</small>"},
		{name: "negative value", value: -5, min: 10, expect: "-5.0<small> (-50%)</small>"},
		{name: "pointers", value: &f, min: noTarget, max: 200, expect: "50.0<small> (25%)</small>"},
		{name: "large value", value: 1e16, expect: "1e+16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValMinMax(tt.value, tt.min, tt.max)
			assert.Equal(t, tt.expect, got)
			assert.Equal(t, got, ValMinMax(tt.value, tt.min, tt.max))
		})
	}
}

func TestPercentRange(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		min    any
		max    any
		expect string
	}{
		{name: "both targets", value: 30, min: 100, max: 150, expect: "30%-20%"},
		{name: "zero min target", value: 30, min: 0, max: 150, expect: "%-20%"},
		{name: "no targets", value: 30, expect: "%-%"},
		{name: "non numeric value", value: "x", min: 100, max: 150, expect: ""},
		{name: "targets reversed", value: 30, min: 150, max: 100, expect: "20%-30%"},
		{name: "non numeric min", value: 30, min: "abc", max: 100, expect: "%-30%"},
		{name: "string value", value: "45", min: 90, expect: "50%-%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PercentRange(tt.value, tt.min, tt.max))
		})
	}
}

func TestRenderProgressBar(t *testing.T) {
	var noMax *float64

	tests := []struct {
		name   string
		value  any
		max    any
		fg     string
		bg     string
		expect template.HTML
		ok     bool
	}{
		{
			name: "half way", value: 50, max: 100, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:50%">50</div></div>`, ok: true,
		},
		{
			name: "capped at full width", value: 150, max: 100, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:100%">150</div></div>`, ok: true,
		},
		{
			name: "exactly full", value: 100, max: 100, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:100%">100</div></div>`, ok: true,
		},
		{
			name: "float value", value: 50.5, max: 200, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:25%">50.5</div></div>`, ok: true,
		},
		{
			name: "nil max defaults to 100", value: 25, max: nil, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:25%">25</div></div>`, ok: true,
		},
		{
			name: "typed nil max defaults to 100", value: 2.0, max: noMax, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:2%">2.0</div></div>`, ok: true,
		},
		{
			name: "zero max defaults to 100", value: 25, max: 0, fg: "fg", bg: "bg",
			expect: `<div class="bg"><div class="fg" style="width:25%">25</div></div>`, ok: true,
		},
		{
			name: "classes are escaped", value: 10, max: 20, fg: `a"b`, bg: "<c>",
			expect: `<div class="&lt;c&gt;"><div class="a&#34;b" style="width:50%">10</div></div>`, ok: true,
		},
		{name: "word value", value: "x", max: 100, fg: "fg", bg: "bg"},
		{name: "numeric string value", value: "50", max: 100, fg: "fg", bg: "bg"},
		{name: "string max", value: 50, max: "100", fg: "fg", bg: "bg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderProgressBar(tt.value, tt.max, tt.fg, tt.bg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestProgressBarPassthrough(t *testing.T) {
	assert.Equal(t, "x", ProgressBar("x", 100, "fg", "bg"))
	assert.Equal(t, "50", ProgressBar("50", 100, "fg", "bg"))

	bar := ProgressBar(50, 100, "fg", "bg")
	assert.IsType(t, template.HTML(""), bar)
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 0)
	require.NoError(t, err)
	assert.Equal(t, NaN, got)

	got, err = Divide(10, math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, NaN, got)

	got, err = Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = Divide("10", "4")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	_, err = Divide("abc", 1)
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Divide(1, nil)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestFuncMap(t *testing.T) {
	tmpl := template.Must(template.New("row").Funcs(FuncMap(DefaultBarStyle)).Parse(
		`{{valminmax .V .Min .Max}}|{{percminmax .V .Min .Max}}|{{progressbar .V .Max}}|{{progressbar .V .Max "a" "b"}}|{{divide .V .Max}}`,
	))

	data := struct {
		V   int
		Min float64
		Max float64
	}{V: 30, Min: 100, Max: 150}

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))

	expected := `30.0<small> (30%-20%)</small>|30%-20%|` +
		`<div class="w3-black"><div class="w3-deep-purple" style="width:20%">30</div></div>|` +
		`<div class="b"><div class="a" style="width:20%">30</div></div>|0.2`
	assert.Equal(t, expected, buf.String())
}

func TestFuncMapPassthroughIsEscaped(t *testing.T) {
	tmpl := template.Must(template.New("bar").Funcs(FuncMap(DefaultBarStyle)).Parse(`{{progressbar .V .Max}}`))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, map[string]any{"V": "<b>", "Max": 100}))
	assert.Equal(t, "&lt;b&gt;", buf.String())
}

func TestFuncMapDivideFormatsQuotient(t *testing.T) {
	tmpl := template.Must(template.New("div").Funcs(FuncMap(DefaultBarStyle)).Parse(`{{divide .A .B}}`))

	tests := []struct {
		name   string
		a, b   any
		expect string
	}{
		{name: "integral quotient keeps fraction", a: 30, b: 1, expect: "30.0"},
		{name: "fractional quotient", a: 1, b: 4, expect: "0.25"},
		{name: "zero denominator", a: 30, b: 0, expect: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, map[string]any{"A": tt.a, "B": tt.b}))
			assert.Equal(t, tt.expect, buf.String())
		})
	}
}

func TestFuncMapDivideError(t *testing.T) {
	tmpl := template.Must(template.New("div").Funcs(FuncMap(DefaultBarStyle)).Parse(`{{divide .A .B}}`))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{"A": "abc", "B": 2})
	assert.ErrorIs(t, err, ErrNotNumeric)
}
