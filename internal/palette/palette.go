// Package palette holds named reference colors and their precomputed Lab values.
package palette

import (
	"slices"
	"sync"

	"github.com/jsvensson/huematch/internal/color"
)

// Color is a named palette entry. Hex is in canonical "#RRGGBB" form.
type Color struct {
	Hex  string
	Name string
}

// Entry is a palette color with its Lab value. Lab is always the conversion
// of Hex and is never set independently.
type Entry struct {
	Color
	Lab color.Lab
}

// Builtin returns a copy of the reference palette in declaration order.
func Builtin() []Color {
	return slices.Clone(builtin)
}

// WithLab converts every color in the list to an Entry, preserving order.
// Hex values are stored in canonical "#RRGGBB" form; entries that fail to
// parse are logged and skipped.
func WithLab(colors []Color) []Entry {
	entries := make([]Entry, 0, len(colors))
	for _, c := range colors {
		rgb, err := color.ParseHex(c.Hex)
		if err != nil {
			log.Warningf("skipping color %q: %s", c.Name, err)
			continue
		}
		c.Hex = rgb.Hex()
		entries = append(entries, Entry{Color: c, Lab: color.RGBToLab(rgb)})
	}
	return entries
}

var builtinWithLab = sync.OnceValue(func() []Entry {
	return WithLab(builtin)
})

// BuiltinWithLab returns the reference palette with Lab values. The slice is
// computed on first use and the same slice is returned on every call;
// callers must not modify it.
func BuiltinWithLab() []Entry {
	return builtinWithLab()
}
