package lsp

import (
	"testing"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestColorToLSP(t *testing.T) {
	tests := []struct {
		name  string
		input color.RGB
		want  protocol.Color
	}{
		{"black", color.RGB{}, protocol.Color{Alpha: 1}},
		{"white", color.RGB{R: 255, G: 255, B: 255}, protocol.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}},
		{"red", color.RGB{R: 255}, protocol.Color{Red: 1, Alpha: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToLSP(tt.input); got != tt.want {
				t.Errorf("colorToLSP(%+v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorFromLSPRoundTrip(t *testing.T) {
	for _, c := range []color.RGB{
		{R: 0x12, G: 0x34, B: 0x56},
		{R: 0xFF, G: 0x88, B: 0x00},
		{R: 1, G: 254, B: 128},
	} {
		if got := colorFromLSP(colorToLSP(c)); got != c {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
	}

	if got := colorFromLSP(protocol.Color{Red: 1.5, Green: -0.2, Blue: 0.5}); got != (color.RGB{R: 255, G: 0, B: 128}) {
		t.Errorf("out-of-range channels should clamp, got %+v", got)
	}
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("file:///a.css", "a { color: #FF0000; }\nb { color: #0000ff; }\n")
	infos := documentColors(result)

	if len(infos) != 2 {
		t.Fatalf("expected 2 color infos, got %d", len(infos))
	}
	if infos[0].Color != (protocol.Color{Red: 1, Alpha: 1}) {
		t.Errorf("first color = %+v", infos[0].Color)
	}
	if infos[1].Range.Start.Line != 1 || infos[1].Color != (protocol.Color{Blue: 1, Alpha: 1}) {
		t.Errorf("second color = %+v at %+v", infos[1].Color, infos[1].Range)
	}
}

func TestDocumentColors_NilResult(t *testing.T) {
	infos := documentColors(nil)
	if infos == nil || len(infos) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", infos)
	}
}

func TestColorPresentation_KeepsAlpha(t *testing.T) {
	content := "#FF000080"
	r := protocol.Range{End: protocol.Position{Character: 9}}

	got := colorPresentation(content, presentationParams(r, color.RGB{R: 0xFF, G: 0x88, B: 0x00}), finder.Options{})
	if len(got) != 2 {
		t.Fatalf("expected 2 presentations, got %+v", got)
	}
	if got[0].TextEdit.NewText != "#FF880080" {
		t.Errorf("picked replacement = %q, want #FF880080", got[0].TextEdit.NewText)
	}
	if got[1].TextEdit.NewText != "#FFA50080" {
		t.Errorf("nearest replacement = %q, want #FFA50080", got[1].TextEdit.NewText)
	}

	lower := colorPresentation("#ff0000cc", presentationParams(r, color.RGB{R: 0xE3, G: 0x0B, B: 0x17}), finder.Options{})
	if len(lower) != 1 || lower[0].TextEdit.NewText != "#e30b17cc" {
		t.Errorf("lowercase replacement = %+v, want #e30b17cc", lower)
	}
}

func presentationParams(r protocol.Range, c color.RGB) *protocol.ColorPresentationParams {
	return &protocol.ColorPresentationParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.css"},
		Color:        colorToLSP(c),
		Range:        r,
	}
}

func TestColorPresentation_HexLiteral(t *testing.T) {
	content := "a { color: #FF0000; }"
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 11},
		End:   protocol.Position{Line: 0, Character: 18},
	}

	got := colorPresentation(content, presentationParams(r, color.RGB{R: 0xFF, G: 0x88}), finder.Options{})
	if len(got) != 2 {
		t.Fatalf("expected 2 presentations, got %d: %+v", len(got), got)
	}

	if got[0].Label != "#FF8800" || got[0].TextEdit == nil || got[0].TextEdit.NewText != "#FF8800" {
		t.Errorf("unexpected first presentation %+v", got[0])
	}
	if got[0].TextEdit.Range != r {
		t.Errorf("edit range = %+v, want %+v", got[0].TextEdit.Range, r)
	}
	if got[1].Label != "Orange (#FFA500)" || got[1].TextEdit.NewText != "#FFA500" {
		t.Errorf("unexpected nearest presentation %+v", got[1])
	}
}

func TestColorPresentation_KeepsLowercase(t *testing.T) {
	content := "#ff0000"
	r := protocol.Range{End: protocol.Position{Character: 7}}

	got := colorPresentation(content, presentationParams(r, color.RGB{R: 0xE3, G: 0x0B, B: 0x17}), finder.Options{})
	if len(got) != 1 {
		t.Fatalf("expected only the picked color when it is a palette color, got %+v", got)
	}
	if got[0].TextEdit.NewText != "#e30b17" {
		t.Errorf("expected lowercase replacement, got %q", got[0].TextEdit.NewText)
	}
}

func TestColorPresentation_EmptyPalette(t *testing.T) {
	r := protocol.Range{End: protocol.Position{Character: 7}}
	got := colorPresentation("#FF0000", presentationParams(r, color.RGB{R: 1}), finder.Options{Palette: []palette.Entry{}})
	if len(got) != 1 || got[0].Label != "#010000" {
		t.Errorf("unexpected presentations %+v", got)
	}
}

func TestColorPresentation_NotALiteral(t *testing.T) {
	r := protocol.Range{End: protocol.Position{Character: 3}}
	got := colorPresentation("red", presentationParams(r, color.RGB{R: 255}), finder.Options{})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty presentations, got %+v", got)
	}
}

func TestExtractText(t *testing.T) {
	content := "line one\n  #ABCDEF here\n"
	tests := []struct {
		name string
		r    protocol.Range
		want string
	}{
		{"literal", protocol.Range{Start: protocol.Position{Line: 1, Character: 2}, End: protocol.Position{Line: 1, Character: 9}}, "#ABCDEF"},
		{"clamped", protocol.Range{Start: protocol.Position{Line: 0, Character: 5}, End: protocol.Position{Line: 0, Character: 50}}, "one"},
		{"past end", protocol.Range{Start: protocol.Position{Line: 9}, End: protocol.Position{Line: 9, Character: 2}}, ""},
		{"multi-line", protocol.Range{Start: protocol.Position{Line: 0}, End: protocol.Position{Line: 1}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.r); got != tt.want {
				t.Errorf("extractText = %q, want %q", got, tt.want)
			}
		})
	}
}
