package lsp

import (
	"testing"

	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const brandPalette = `color "Signal Red" {
  hex = "#E30B17"
}

color "Deep Sea" {
  hex = rgb(0, 40, 80)
}
`

func TestDefinition_NearestPaletteBlock(t *testing.T) {
	file, err := palette.Parse([]byte(brandPalette), "brand.huepal")
	if err != nil {
		t.Fatal(err)
	}
	opts := finder.Options{Palette: file.Entries()}
	uri := protocol.DocumentUri("file:///brand.huepal")

	result := Analyze("file:///a.css", "a { color: #001030; }\nb { color: #EE0000; }\n")

	tests := []struct {
		name string
		pos  protocol.Position
		line uint32
	}{
		{"deep sea", protocol.Position{Line: 0, Character: 13}, 4},
		{"signal red", protocol.Position{Line: 1, Character: 12}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := definition(result, tt.pos, opts, file, uri)
			if loc == nil {
				t.Fatal("expected a location")
			}
			if loc.URI != uri {
				t.Errorf("URI = %q, want %q", loc.URI, uri)
			}
			if loc.Range.Start.Line != tt.line || loc.Range.Start.Character != 0 {
				t.Errorf("location starts at %+v, want line %d", loc.Range.Start, tt.line)
			}
		})
	}
}

func TestDefinition_BuiltinPalette(t *testing.T) {
	result := Analyze("file:///a.css", "#EE0000")
	if loc := definition(result, protocol.Position{Character: 2}, finder.Options{}, nil, ""); loc != nil {
		t.Errorf("expected no definition for the built-in palette, got %+v", loc)
	}
}

func TestDefinition_NoColor(t *testing.T) {
	file, err := palette.Parse([]byte(brandPalette), "brand.huepal")
	if err != nil {
		t.Fatal(err)
	}
	result := Analyze("file:///a.css", "no color")
	if loc := definition(result, protocol.Position{Character: 2}, finder.Options{Palette: file.Entries()}, file, "file:///brand.huepal"); loc != nil {
		t.Errorf("expected nil location, got %+v", loc)
	}
}
