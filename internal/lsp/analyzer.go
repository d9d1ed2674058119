package lsp

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "huematch"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// hexLiteral matches #RRGGBB and #RRGGBBAA not followed by another word
// character.
var hexLiteral = regexp.MustCompile(`#[0-9A-Fa-f]{6}(?:[0-9A-Fa-f]{2})?\b`)

// AnalysisResult holds everything produced by analyzing a document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a hex literal at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Text  string // literal as written
	Color color.RGB
}

// isPaletteFile reports whether a URI or filename names a palette file.
func isPaletteFile(name string) bool {
	return strings.HasSuffix(name, palette.Ext)
}

// Analyze scans a document for hex color literals. Palette files are also
// decoded and every problem found is reported as a diagnostic.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: []protocol.Diagnostic{},
		Colors:      scanColors(content),
	}

	if isPaletteFile(filename) {
		_, diags := palette.Decode([]byte(content), filename)
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
	}

	return result
}

// scanColors finds hex literals line by line. Characters are byte offsets
// within the line.
func scanColors(content string) []ColorLocation {
	var colors []ColorLocation
	for i, line := range splitLines(content) {
		for _, loc := range hexLiteral.FindAllStringIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			rgb, err := color.ParseHex(text)
			if err != nil {
				continue
			}
			colors = append(colors, ColorLocation{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(i), Character: uint32(loc[0])},
					End:   protocol.Position{Line: uint32(i), Character: uint32(loc[1])},
				},
				Text:  text,
				Color: rgb,
			})
		}
	}
	return colors
}

// colorAt returns the color literal containing pos, if any.
func (r *AnalysisResult) colorAt(pos protocol.Position) (ColorLocation, bool) {
	if r == nil {
		return ColorLocation{}, false
	}
	for _, cl := range r.Colors {
		if posInRange(pos, cl.Range) {
			return cl, true
		}
	}
	return ColorLocation{}, false
}

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func strPtr(s string) *string {
	return &s
}
