// Package huematch converts colors between hex, sRGB, CIE XYZ and CIE Lab,
// measures perceptual color difference, and names colors by finding the
// closest entries of a reference palette.
package huematch

import (
	"fmt"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
)

type (
	// RGB is an sRGB color with 8-bit channels.
	RGB = color.RGB
	// XYZ is a CIE XYZ value relative to a D65 white of Y = 1.
	XYZ = color.XYZ
	// Lab is a CIE L*a*b* color.
	Lab = color.Lab
	// Color is a named palette color with a canonical "#RRGGBB" hex.
	Color = palette.Color
	// ColorWithLab is a palette color with its precomputed Lab value.
	ColorWithLab = palette.Entry
	// ColorMatch is a palette color and its distance from a searched color.
	ColorMatch = finder.Match
	// Formula selects a color difference formula.
	Formula = deltae.Formula
	// Weights are the CIE94 application weights.
	Weights = deltae.Weights
	// SearchOptions control FindNearest and Search.
	SearchOptions = finder.Options
)

// Formulas.
const (
	CIE76     = deltae.FormulaCIE76
	CIE94     = deltae.FormulaCIE94
	CIEDE2000 = deltae.FormulaCIEDE2000
)

var (
	// ErrEmptyInput is returned for an empty hex color.
	ErrEmptyInput = color.ErrEmptyInput
	// ErrInvalidFormat is returned for a hex color that is not 6 or 8 digits.
	ErrInvalidFormat = color.ErrInvalidFormat
	// ErrUnknownFormula is returned by ParseFormula for an unrecognized tag.
	ErrUnknownFormula = deltae.ErrUnknownFormula
	// ErrUnknownWeights is returned for an unrecognized CIE94 weight set.
	ErrUnknownWeights = deltae.ErrUnknownWeights

	// GraphicArts are the default CIE94 weights.
	GraphicArts = deltae.GraphicArts
	// Textiles are the CIE94 weights for textile applications.
	Textiles = deltae.Textiles
)

// NormalizeHex validates a hex color and returns it as "#RRGGBB".
func NormalizeHex(s string) (string, error) {
	return color.NormalizeHex(s)
}

// HexToRGB parses a hex color.
func HexToRGB(s string) (RGB, error) {
	return color.ParseHex(s)
}

// RGBToXYZ converts an sRGB color to CIE XYZ under D65.
func RGBToXYZ(c RGB) XYZ { return color.RGBToXYZ(c) }

// XYZToLab converts a CIE XYZ value to Lab under D65.
func XYZToLab(v XYZ) Lab { return color.XYZToLab(v) }

// RGBToLab converts an sRGB color to Lab.
func RGBToLab(c RGB) Lab { return color.RGBToLab(c) }

// HexToLab parses a hex color and converts it to Lab.
func HexToLab(s string) (Lab, error) {
	rgb, err := color.ParseHex(s)
	if err != nil {
		return Lab{}, err
	}
	return rgb.Lab(), nil
}

// ParseFormula parses a formula tag: "76", "94" or "2000".
func ParseFormula(tag string) (Formula, error) {
	return deltae.ParseFormula(tag)
}

// DeltaE76 returns the CIE76 difference between two Lab colors.
func DeltaE76(a, b Lab) float64 { return deltae.CIE76(a, b) }

// DeltaE94 returns the CIE94 difference with graphic arts weights. The first
// argument is the reference color.
func DeltaE94(a, b Lab) float64 { return deltae.CIE94(a, b, deltae.GraphicArts) }

// DeltaE2000 returns the CIEDE2000 difference between two Lab colors.
func DeltaE2000(a, b Lab) float64 { return deltae.CIEDE2000(a, b) }

// ColorList returns a copy of the built-in palette in declaration order.
func ColorList() []Color {
	return palette.Builtin()
}

// PaletteWithLab returns the built-in palette with Lab values. The result is
// shared and must not be modified.
func PaletteWithLab() []ColorWithLab {
	return palette.BuiltinWithLab()
}

// WithLab converts a custom color list for use as SearchOptions.Palette.
// Hex values are canonicalized and unparsable colors are skipped.
func WithLab(colors []Color) []ColorWithLab {
	return palette.WithLab(colors)
}

// FindNearestColor returns the built-in palette color closest to hex using
// the given formula.
func FindNearestColor(hex string, formula Formula) (*ColorMatch, error) {
	return finder.FindNearest(hex, finder.Options{Formula: formula})
}

// FindAllClosestColors returns up to count built-in palette colors ordered
// by distance from hex. A count of zero returns five.
func FindAllClosestColors(hex string, formula Formula, count int) ([]ColorMatch, error) {
	return finder.FindAllClosest(hex, finder.Options{Formula: formula, Count: count})
}

// FindNearest returns the color closest to hex under full search options.
// It returns nil when the searched palette is empty.
func FindNearest(hex string, opts SearchOptions) (*ColorMatch, error) {
	return finder.FindNearest(hex, opts)
}

// Search returns the colors closest to hex under full search options.
func Search(hex string, opts SearchOptions) ([]ColorMatch, error) {
	return finder.FindAllClosest(hex, opts)
}

// Palette is a palette loaded from a file, ready for searching.
type Palette struct {
	Name    string
	Author  string
	Entries []ColorWithLab
	// Options holds the file's search defaults with Palette set to Entries.
	Options SearchOptions
}

// LoadPalette reads a palette file and prepares it for searching.
func LoadPalette(path string) (*Palette, error) {
	f, err := palette.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}

	entries := f.Entries()
	opts := SearchOptions{
		Weights:   f.Defaults.Weights,
		Palette:   entries,
		Count:     f.Defaults.Count,
		Threshold: f.Defaults.Threshold,
	}
	if f.Defaults.Formula != nil {
		opts.Formula = *f.Defaults.Formula
	}

	return &Palette{
		Name:    f.Meta.Name,
		Author:  f.Meta.Author,
		Entries: entries,
		Options: opts,
	}, nil
}

// FindNearest returns the palette color closest to hex using the palette's
// default formula.
func (p *Palette) FindNearest(hex string) (*ColorMatch, error) {
	return finder.FindNearest(hex, p.Options)
}

// FindAllClosest returns the palette colors closest to hex using the
// palette's defaults.
func (p *Palette) FindAllClosest(hex string) ([]ColorMatch, error) {
	return finder.FindAllClosest(hex, p.Options)
}
