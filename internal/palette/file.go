package palette

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Ext is the file extension of palette files.
const Ext = ".huepal"

var log = commonlog.GetLogger("huematch.palette")

// File is a decoded palette file.
type File struct {
	Meta     Meta
	Defaults Defaults
	Colors   []Color
	// Ranges holds the definition range of each color block, parallel to
	// Colors. It is nil when the ranges could not be matched to the colors.
	Ranges []hcl.Range
}

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
}

// Defaults are search settings carried by a palette file. Nil fields and a
// zero Count are unset.
type Defaults struct {
	Formula   *deltae.Formula
	Weights   *deltae.Weights
	Count     int
	Threshold *float64
}

// Entries returns the file's colors with Lab values, in declaration order.
func (f *File) Entries() []Entry {
	return WithLab(f.Colors)
}

type rawFile struct {
	Meta     *Meta        `hcl:"meta,block"`
	Defaults *rawDefaults `hcl:"defaults,block"`
	Colors   []rawColor   `hcl:"color,block"`
}

type rawDefaults struct {
	Formula   hcl.Expression `hcl:"formula,optional"`
	Weights   hcl.Expression `hcl:"weights,optional"`
	Count     hcl.Expression `hcl:"count,optional"`
	Threshold hcl.Expression `hcl:"threshold,optional"`
}

type rawColor struct {
	Name string         `hcl:"name,label"`
	Hex  hcl.Expression `hcl:"hex"`
}

// Load reads and decodes a palette file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}

	f, err := Parse(src, path)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded %d colors from %s", len(f.Colors), path)
	return f, nil
}

// Parse decodes palette file source. All problems are reported in a single
// error.
func Parse(src []byte, filename string) (*File, error) {
	f, diags := Decode(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing palette: %s", diags.Error())
	}
	return f, nil
}

// Decode decodes palette file source and returns every diagnostic found.
// The returned File holds whatever could be decoded, and is nil only when
// the source is not syntactically valid HCL.
func Decode(src []byte, filename string) (*File, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw rawFile
	diags = append(diags, gohcl.DecodeBody(file.Body, nil, &raw)...)

	f := &File{}
	if raw.Meta != nil {
		f.Meta = *raw.Meta
	}

	if raw.Defaults != nil {
		diags = append(diags, decodeDefaults(raw.Defaults, &f.Defaults)...)
	}

	defs := colorDefRanges(file.Body)
	if len(defs) != len(raw.Colors) {
		defs = nil
	}

	ctx := evalContext()
	for i, rc := range raw.Colors {
		hex, ok, d := evalHex(rc.Hex, ctx)
		diags = append(diags, d...)
		if !ok {
			continue
		}
		f.Colors = append(f.Colors, Color{Hex: hex, Name: rc.Name})
		if defs != nil {
			f.Ranges = append(f.Ranges, defs[i])
		}
	}

	return f, diags
}

// Range returns the definition range of the first color block with the
// given name and hex.
func (f *File) Range(c Color) (hcl.Range, bool) {
	if len(f.Ranges) != len(f.Colors) {
		return hcl.Range{}, false
	}
	for i, fc := range f.Colors {
		if fc == c {
			return f.Ranges[i], true
		}
	}
	return hcl.Range{}, false
}

func colorDefRanges(body hcl.Body) []hcl.Range {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var ranges []hcl.Range
	for _, block := range sb.Blocks {
		if block.Type == "color" {
			ranges = append(ranges, block.DefRange())
		}
	}
	return ranges
}

// evalHex evaluates a color's hex attribute. A missing attribute is already
// reported by the decoder and yields no further diagnostic.
func evalHex(expr hcl.Expression, ctx *hcl.EvalContext) (string, bool, hcl.Diagnostics) {
	if expr == nil {
		return "", false, nil
	}
	val, diags := expr.Value(ctx)
	if diags.HasErrors() || val.IsNull() {
		return "", false, diags
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() {
		return "", false, hcl.Diagnostics{exprError(expr, "Invalid hex value", "A hex color string is required.")}
	}

	hex, err := color.NormalizeHex(str.AsString())
	if err != nil {
		return "", false, hcl.Diagnostics{exprError(expr, "Invalid hex value", err.Error())}
	}
	return hex, true, diags
}

func decodeDefaults(raw *rawDefaults, dest *Defaults) hcl.Diagnostics {
	var diags hcl.Diagnostics

	tag, ok, d := optionalString(raw.Formula)
	diags = append(diags, d...)
	if ok {
		f, err := deltae.ParseFormula(tag)
		if err != nil {
			diags = append(diags, exprError(raw.Formula, "Invalid formula", err.Error()))
		} else {
			dest.Formula = &f
		}
	}

	name, ok, d := optionalString(raw.Weights)
	diags = append(diags, d...)
	if ok {
		w, err := deltae.ParseWeights(name)
		if err != nil {
			diags = append(diags, exprError(raw.Weights, "Invalid weights", err.Error()))
		} else {
			dest.Weights = &w
		}
	}

	val, ok, d := optionalValue(raw.Count)
	diags = append(diags, d...)
	if ok {
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil || n < 1 {
			diags = append(diags, exprError(raw.Count, "Invalid count", "Count must be a whole number of at least 1."))
		} else {
			dest.Count = n
		}
	}

	val, ok, d = optionalValue(raw.Threshold)
	diags = append(diags, d...)
	if ok {
		var t float64
		if err := gocty.FromCtyValue(val, &t); err != nil || t < 0 {
			diags = append(diags, exprError(raw.Threshold, "Invalid threshold", "Threshold must be a non-negative number."))
		} else {
			dest.Threshold = &t
		}
	}

	return diags
}

// optionalValue evaluates an optional attribute without context. Missing
// attributes decode to a null value. References and function calls are
// rejected with the evaluation diagnostics.
func optionalValue(expr hcl.Expression) (cty.Value, bool, hcl.Diagnostics) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return cty.NilVal, false, nil
	}
	return val, true, nil
}

func optionalString(expr hcl.Expression) (string, bool, hcl.Diagnostics) {
	val, ok, diags := optionalValue(expr)
	if !ok {
		return "", false, diags
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, hcl.Diagnostics{exprError(expr, "Invalid value", "A string is required.")}
	}
	return str.AsString(), true, nil
}

func exprError(expr hcl.Expression, summary, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}
}

// makeRGBFunc creates an HCL function that builds a hex color from channels.
// Usage: rgb(227, 11, 23)
func makeRGBFunc() function.Function {
	channel := func(name string) function.Parameter {
		return function.Parameter{Name: name, Type: cty.Number}
	}

	return function.New(&function.Spec{
		Description: "Returns the hex color for 8-bit red, green and blue channels",
		Params:      []function.Parameter{channel("red"), channel("green"), channel("blue")},
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]uint8
			for i, arg := range args {
				var v int
				if err := gocty.FromCtyValue(arg, &v); err != nil {
					return cty.NilVal, function.NewArgErrorf(i, "must be a whole number")
				}
				if v < 0 || v > 255 {
					return cty.NilVal, function.NewArgErrorf(i, "must be between 0 and 255, got %d", v)
				}
				ch[i] = uint8(v)
			}
			return cty.StringVal(color.RGB{R: ch[0], G: ch[1], B: ch[2]}.Hex()), nil
		},
	})
}

// makeLightnessFunc creates an HCL function that shifts a color's HSL
// lightness. Usage: brighten("#E30B17", 0.2)
func makeLightnessFunc(description string, adjust func(color.RGB, float64) color.RGB) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			rgb, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			var amount float64
			if err := gocty.FromCtyValue(args[1], &amount); err != nil {
				return cty.NilVal, function.NewArgErrorf(1, "must be a number")
			}
			if amount < 0 || amount > 1 {
				return cty.NilVal, function.NewArgErrorf(1, "must be between 0 and 1, got %g", amount)
			}
			return cty.StringVal(adjust(rgb, amount).Hex()), nil
		},
	})
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"rgb":      makeRGBFunc(),
			"brighten": makeLightnessFunc("Returns the color with its lightness raised by a fraction", color.Brighten),
			"darken":   makeLightnessFunc("Returns the color with its lightness lowered by a fraction", color.Darken),
		},
	}
}
