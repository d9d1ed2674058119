package finder

import (
	"errors"
	"testing"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/palette"
)

var sampleColors = []palette.Color{
	{Hex: "#FFEBCD", Name: "Blanched Almond"},
	{Hex: "#FFDAB9", Name: "Peach Puff"},
	{Hex: "#CD853F", Name: "Peru"},
	{Hex: "#FFC0CB", Name: "Pink"},
	{Hex: "#DDA0DD", Name: "Plum"},
	{Hex: "#B0E0E6", Name: "Powder Blue"},
	{Hex: "#EAE0C8", Name: "Zinc"},
}

func ptr[T any](v T) *T { return &v }

func TestFindNearestExactMatch(t *testing.T) {
	for _, c := range sampleColors {
		t.Run(c.Name, func(t *testing.T) {
			m, err := FindNearest(c.Hex, Options{})
			if err != nil {
				t.Fatalf("FindNearest(%q) error: %v", c.Hex, err)
			}
			if m == nil {
				t.Fatalf("FindNearest(%q) = nil", c.Hex)
			}
			want := Match{Color: c, Distance: 0}
			if *m != want {
				t.Errorf("FindNearest(%q) = %+v, want %+v", c.Hex, *m, want)
			}
		})
	}
}

func TestFindNearestBlack(t *testing.T) {
	m, err := FindNearest("#000000", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := Match{Color: palette.Color{Hex: "#000000", Name: "Black"}}
	if m == nil || *m != want {
		t.Errorf("FindNearest(#000000) = %+v, want %+v", m, want)
	}
}

func TestFindNearestExactMatchNormalizesInput(t *testing.T) {
	for _, in := range []string{"ffebcd", "#ffebcd", "FFEBCD", "#FFEBCDAA"} {
		m, err := FindNearest(in, Options{})
		if err != nil {
			t.Fatalf("FindNearest(%q) error: %v", in, err)
		}
		if m.Name != "Blanched Almond" || m.Distance != 0 {
			t.Errorf("FindNearest(%q) = %+v", in, *m)
		}
	}
}

func TestFindNearestDuplicateHexReturnsFirstDeclared(t *testing.T) {
	tests := []struct {
		hex  string
		name string
	}{
		{"#A52A2A", "Brown"},
		{"#FF00FF", "Magenta"},
		{"#D3D3D3", "Light Grey"},
		{"#00FA9A", "Medium Spring Green"},
	}

	for _, tt := range tests {
		m, err := FindNearest(tt.hex, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if m.Name != tt.name {
			t.Errorf("FindNearest(%s) = %q, want %q", tt.hex, m.Name, tt.name)
		}
	}
}

func TestFindNearestCloseColor(t *testing.T) {
	tests := []struct {
		formula deltae.Formula
		maxDist float64
	}{
		{deltae.FormulaCIE76, 2},
		{deltae.FormulaCIE94, 2},
		{deltae.FormulaCIEDE2000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.formula.Name(), func(t *testing.T) {
			m, err := FindNearest("#FFEBCC", Options{Formula: tt.formula})
			if err != nil {
				t.Fatal(err)
			}
			if m.Name != "Blanched Almond" || m.Hex != "#FFEBCD" {
				t.Errorf("got %+v, want Blanched Almond", *m)
			}
			if m.Distance <= 0 || m.Distance >= tt.maxDist {
				t.Errorf("distance %v not in (0, %v)", m.Distance, tt.maxDist)
			}
		})
	}
}

func TestFindNearestFormulaChangesWinner(t *testing.T) {
	tests := []struct {
		formula deltae.Formula
		name    string
	}{
		{deltae.FormulaCIE76, "Red (Web)"},
		{deltae.FormulaCIE94, "Red Devil"},
		{deltae.FormulaCIEDE2000, "Red Devil"},
	}

	for _, tt := range tests {
		m, err := FindNearest("#EE0000", Options{Formula: tt.formula})
		if err != nil {
			t.Fatal(err)
		}
		if m.Name != tt.name {
			t.Errorf("formula %v: got %q, want %q", tt.formula, m.Name, tt.name)
		}
	}
}

func TestFindNearestCustomPalette(t *testing.T) {
	custom := []palette.Entry{
		{Color: palette.Color{Hex: "#FF0000", Name: "My Red"}, Lab: color.Lab{L: 53.24, A: 80.09, B: 67.2}},
		{Color: palette.Color{Hex: "#0000FF", Name: "My Blue"}, Lab: color.Lab{L: 32.3, A: 79.19, B: -107.86}},
	}

	m, err := FindNearest("#EE0000", Options{Palette: custom})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "My Red" {
		t.Errorf("got %q, want My Red", m.Name)
	}
}

func TestFindNearestTieGoesToFirst(t *testing.T) {
	custom := palette.WithLab([]palette.Color{
		{Hex: "#111111", Name: "First"},
		{Hex: "#111111", Name: "Second"},
	})

	m, err := FindNearest("#FFFFFF", Options{Palette: custom})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "First" {
		t.Errorf("got %q, want First", m.Name)
	}

	m, err = FindNearest("#111111", Options{Palette: custom})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "First" || m.Distance != 0 {
		t.Errorf("exact match got %+v, want First at 0", *m)
	}
}

func TestFindNearestExactMatchLowercasePalette(t *testing.T) {
	custom := palette.WithLab([]palette.Color{
		{Hex: "#ff0000", Name: "Lower Red"},
		{Hex: "#fe0000", Name: "Almost Red"},
	})

	m, err := FindNearest("#FF0000", Options{Formula: deltae.FormulaCIEDE2000, Palette: custom})
	if err != nil {
		t.Fatal(err)
	}
	want := Match{Color: palette.Color{Hex: "#FF0000", Name: "Lower Red"}}
	if m == nil || *m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestFindNearestEmptyPalette(t *testing.T) {
	m, err := FindNearest("#FF0000", Options{Palette: []palette.Entry{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil match, got %+v", *m)
	}
}

func TestFindAllClosestCount(t *testing.T) {
	matches, err := FindAllClosest("#FFEBCC", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != DefaultCount {
		t.Fatalf("expected %d matches, got %d", DefaultCount, len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Errorf("matches not sorted at %d: %v < %v", i, matches[i].Distance, matches[i-1].Distance)
		}
	}
	if matches[0].Name != "Blanched Almond" || matches[1].Name != "Papaya Whip" {
		t.Errorf("unexpected leading matches %q, %q", matches[0].Name, matches[1].Name)
	}

	matches, err = FindAllClosest("#FFEBCC", Options{Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestFindAllClosestNoExactShortCircuit(t *testing.T) {
	matches, err := FindAllClosest("#A52A2A", Options{Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Name != "Brown" || matches[1].Name != "Red Brown" {
		t.Errorf("expected duplicates in palette order, got %q, %q", matches[0].Name, matches[1].Name)
	}
	if matches[0].Distance != 0 || matches[1].Distance != 0 {
		t.Errorf("expected zero distances, got %v, %v", matches[0].Distance, matches[1].Distance)
	}
}

func TestFindAllClosestThreshold(t *testing.T) {
	matches, err := FindAllClosest("#FFEBCC", Options{Threshold: ptr(4.0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches within 4, got %d: %+v", len(matches), matches)
	}
	for _, m := range matches {
		if m.Distance > 4 {
			t.Errorf("%s at %v exceeds threshold", m.Name, m.Distance)
		}
	}
}

func TestFindAllClosestThresholdOverridesCount(t *testing.T) {
	matches, err := FindAllClosest("#808080", Options{Count: 1, Threshold: ptr(1000.0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != len(palette.BuiltinWithLab()) {
		t.Errorf("expected whole palette, got %d", len(matches))
	}

	matches, err = FindAllClosest("#808081", Options{Count: 10, Threshold: ptr(0.0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches at threshold 0, got %+v", matches)
	}
}

func TestFindAllClosestCountLargerThanPalette(t *testing.T) {
	custom := palette.WithLab(sampleColors)
	matches, err := FindAllClosest("#FFFFFF", Options{Palette: custom, Count: 50})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != len(sampleColors) {
		t.Errorf("expected %d matches, got %d", len(sampleColors), len(matches))
	}
}

func TestFindAllClosestStableTies(t *testing.T) {
	custom := palette.WithLab([]palette.Color{
		{Hex: "#FFFFFF", Name: "Far"},
		{Hex: "#222222", Name: "Tie A"},
		{Hex: "#222222", Name: "Tie B"},
		{Hex: "#222222", Name: "Tie C"},
	})

	matches, err := FindAllClosest("#000000", Options{Palette: custom, Count: 4})
	if err != nil {
		t.Fatal(err)
	}
	got := []string{matches[0].Name, matches[1].Name, matches[2].Name, matches[3].Name}
	want := []string{"Tie A", "Tie B", "Tie C", "Far"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFindAllClosestFormula(t *testing.T) {
	matches, err := FindAllClosest("#EE0000", Options{Formula: deltae.FormulaCIEDE2000, Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Name != "Red Devil" || matches[1].Name != "Red (Web)" {
		t.Errorf("unexpected order %q, %q", matches[0].Name, matches[1].Name)
	}
}

func TestFindAllClosestWeights(t *testing.T) {
	plain, err := FindAllClosest("#EE0000", Options{Formula: deltae.FormulaCIE94, Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	textiles, err := FindAllClosest("#EE0000", Options{Formula: deltae.FormulaCIE94, Weights: &deltae.Textiles, Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if plain[0].Distance == textiles[0].Distance {
		t.Error("expected textile weights to change the distance")
	}
}

func TestFindAllClosestEmptyPalette(t *testing.T) {
	matches, err := FindAllClosest("#FF0000", Options{Palette: []palette.Entry{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", matches)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"#GGGGGG", color.ErrInvalidFormat},
		{"12345", color.ErrInvalidFormat},
		{"invalid-color", color.ErrInvalidFormat},
		{"", color.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := FindNearest(tt.input, Options{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindNearest(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if m != nil {
				t.Errorf("FindNearest(%q) returned a match alongside the error", tt.input)
			}

			matches, err := FindAllClosest(tt.input, Options{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindAllClosest(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if matches != nil {
				t.Errorf("FindAllClosest(%q) returned matches alongside the error", tt.input)
			}
		})
	}
}

func TestInvalidInputOnEmptyPalette(t *testing.T) {
	// Validation happens before the palette is consulted.
	_, err := FindNearest("#GGGGGG", Options{Palette: []palette.Entry{}})
	if !errors.Is(err, color.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}
