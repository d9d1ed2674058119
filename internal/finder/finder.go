// Package finder looks up the closest named colors to an input color.
package finder

import (
	"fmt"
	"slices"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/palette"
)

// DefaultCount is the number of matches FindAllClosest returns when
// Options.Count is zero.
const DefaultCount = 5

// Match is a palette color and its distance from the input color, in the
// units of the formula used for the search.
type Match struct {
	palette.Color
	Distance float64
}

// Options control a search. The zero value searches the built-in palette
// with CIE76.
type Options struct {
	Formula deltae.Formula
	// Weights override the CIE94 weighting; ignored by other formulas.
	Weights *deltae.Weights
	// Palette replaces the built-in palette when non-nil. An empty non-nil
	// palette matches nothing.
	Palette []palette.Entry
	// Count limits FindAllClosest results. Zero means DefaultCount.
	Count int
	// Threshold, when set, makes FindAllClosest return every match within
	// the distance instead of the Count closest.
	Threshold *float64
}

func (o Options) palette() []palette.Entry {
	if o.Palette == nil {
		return palette.BuiltinWithLab()
	}
	return o.Palette
}

// FindNearest returns the palette color closest to hex. A palette color with
// exactly the same hex is returned with distance 0 without computing any
// distances. Ties go to the color declared first. It returns nil when the
// palette is empty, and an error wrapping color.ErrEmptyInput or
// color.ErrInvalidFormat when hex is not a valid color.
func FindNearest(hex string, opts Options) (*Match, error) {
	normalized, err := color.NormalizeHex(hex)
	if err != nil {
		return nil, fmt.Errorf("finding nearest color: %w", err)
	}

	entries := opts.palette()
	for _, e := range entries {
		if e.Hex == normalized {
			return &Match{Color: e.Color}, nil
		}
	}

	target, err := targetLab(normalized)
	if err != nil {
		return nil, fmt.Errorf("finding nearest color: %w", err)
	}
	metric := opts.Formula.Metric(opts.Weights)

	var nearest *palette.Entry
	minDist := 0.0
	for i := range entries {
		d := metric(target, entries[i].Lab)
		if nearest == nil || d < minDist {
			nearest = &entries[i]
			minDist = d
		}
	}

	if nearest == nil {
		return nil, nil
	}
	return &Match{Color: nearest.Color, Distance: minDist}, nil
}

// FindAllClosest returns palette colors ordered by ascending distance from
// hex. Colors at equal distance keep their palette order. With a Threshold
// every color within it is returned; otherwise at most Count colors are.
func FindAllClosest(hex string, opts Options) ([]Match, error) {
	normalized, err := color.NormalizeHex(hex)
	if err != nil {
		return nil, fmt.Errorf("finding closest colors: %w", err)
	}

	target, err := targetLab(normalized)
	if err != nil {
		return nil, fmt.Errorf("finding closest colors: %w", err)
	}
	metric := opts.Formula.Metric(opts.Weights)

	entries := opts.palette()
	matches := make([]Match, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, Match{Color: e.Color, Distance: metric(target, e.Lab)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})

	if opts.Threshold != nil {
		limit := *opts.Threshold
		n := 0
		for n < len(matches) && matches[n].Distance <= limit {
			n++
		}
		return matches[:n], nil
	}

	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}
	return matches[:min(count, len(matches))], nil
}

func targetLab(hex string) (color.Lab, error) {
	rgb, err := color.ParseHex(hex)
	if err != nil {
		return color.Lab{}, err
	}
	return rgb.Lab(), nil
}
