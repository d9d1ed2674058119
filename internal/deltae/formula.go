package deltae

import (
	"errors"
	"fmt"

	"github.com/jsvensson/huematch/internal/color"
)

var (
	// ErrUnknownFormula is returned for a formula tag other than "76", "94" or "2000".
	ErrUnknownFormula = errors.New("unknown delta-E formula")
	// ErrUnknownWeights is returned for a CIE94 weighting name that is not recognized.
	ErrUnknownWeights = errors.New("unknown CIE94 weights")
)

// Metric computes the perceptual distance between two Lab colors.
type Metric func(a, b color.Lab) float64

// Formula selects one of the supported delta-E formulas. The zero value is CIE76.
type Formula int

const (
	FormulaCIE76 Formula = iota
	FormulaCIE94
	FormulaCIEDE2000
)

// Formulas lists every supported formula in tag order.
var Formulas = []Formula{FormulaCIE76, FormulaCIE94, FormulaCIEDE2000}

// ParseFormula maps a formula tag ("76", "94" or "2000") to a Formula.
func ParseFormula(tag string) (Formula, error) {
	switch tag {
	case "76":
		return FormulaCIE76, nil
	case "94":
		return FormulaCIE94, nil
	case "2000":
		return FormulaCIEDE2000, nil
	}
	return 0, fmt.Errorf("%w %q (valid: 76, 94, 2000)", ErrUnknownFormula, tag)
}

// String returns the formula tag.
func (f Formula) String() string {
	switch f {
	case FormulaCIE76:
		return "76"
	case FormulaCIE94:
		return "94"
	case FormulaCIEDE2000:
		return "2000"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// Name returns the conventional name of the formula, e.g. "CIEDE2000".
func (f Formula) Name() string {
	switch f {
	case FormulaCIE94:
		return "CIE94"
	case FormulaCIEDE2000:
		return "CIEDE2000"
	}
	return "CIE76"
}

// Metric returns the distance function for f. Weights apply to CIE94 only;
// nil selects GraphicArts.
func (f Formula) Metric(w *Weights) Metric {
	switch f {
	case FormulaCIE94:
		weights := GraphicArts
		if w != nil {
			weights = *w
		}
		return func(a, b color.Lab) float64 {
			return CIE94(a, b, weights)
		}
	case FormulaCIEDE2000:
		return CIEDE2000
	}
	return CIE76
}

// ParseWeights maps a CIE94 weighting name to its Weights.
func ParseWeights(name string) (Weights, error) {
	switch name {
	case "graphic-arts":
		return GraphicArts, nil
	case "textiles":
		return Textiles, nil
	}
	return Weights{}, fmt.Errorf("%w %q (valid: graphic-arts, textiles)", ErrUnknownWeights, name)
}
