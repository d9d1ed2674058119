package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an RGB color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.RGB) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP converts a protocol.Color to RGB, rounding each channel.
func colorFromLSP(c protocol.Color) color.RGB {
	channel := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.RGB{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers the picked color as a hex literal, followed by
// the nearest palette color when it differs. Lowercase literals are
// replaced in lowercase.
func colorPresentation(content string, params *protocol.ColorPresentationParams, opts finder.Options) []protocol.ColorPresentation {
	picked := colorFromLSP(params.Color).Hex()

	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "#") {
		return []protocol.ColorPresentation{}
	}
	lower := text != strings.ToUpper(text)

	// An #RRGGBBAA literal keeps its alpha pair.
	var alpha string
	if len(text) == 9 {
		alpha = text[7:]
	}

	presentation := func(label, hex string) protocol.ColorPresentation {
		if lower {
			hex = strings.ToLower(hex)
		}
		return protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: hex + alpha,
			},
		}
	}

	presentations := []protocol.ColorPresentation{presentation(picked, picked)}

	nearest, err := finder.FindNearest(picked, opts)
	if err == nil && nearest != nil && nearest.Hex != picked {
		presentations = append(presentations, presentation(nearest.Name+" ("+nearest.Hex+")", nearest.Hex))
	}
	return presentations
}

// extractText extracts the source text at a single-line LSP range.
func extractText(content string, r protocol.Range) string {
	lines := splitLines(content)
	if int(r.Start.Line) >= len(lines) || r.Start.Line != r.End.Line {
		return ""
	}

	line := lines[r.Start.Line]
	start := min(int(r.Start.Character), len(line))
	end := min(int(r.End.Character), len(line))
	if start > end {
		return ""
	}
	return line[start:end]
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params, s.searchOptions()), nil
}
