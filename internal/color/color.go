package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput is returned when a hex color string is empty.
	ErrEmptyInput = errors.New("empty hex color")
	// ErrInvalidFormat is returned when a hex color string is not 6 or 8 hex digits.
	ErrInvalidFormat = errors.New("invalid hex color")
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}([0-9A-F]{2})?$`)

// RGB represents an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NormalizeHex validates a hex color string and returns it in canonical
// "#RRGGBB" form. The leading # is optional and case is ignored. An 8-digit
// value is accepted and its trailing alpha pair is dropped.
func NormalizeHex(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}

	normalized := s
	if !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	normalized = strings.ToUpper(normalized)

	if !hexPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w %q: must be 6 or 8 hex digits", ErrInvalidFormat, s)
	}

	return normalized[:7], nil
}

// ParseHex parses a hex color string like "#eb6f92" into an RGB value.
// Any form accepted by NormalizeHex is accepted here.
func ParseHex(s string) (RGB, error) {
	hex, err := NormalizeHex(s)
	if err != nil {
		return RGB{}, err
	}

	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %w", ErrInvalidFormat, s, err)
	}

	return RGB{
		R: uint8(v >> 16 & 0xFF),
		G: uint8(v >> 8 & 0xFF),
		B: uint8(v & 0xFF),
	}, nil
}

// Hex returns the color in canonical form, e.g. "#EB6F92".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// CSS returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
