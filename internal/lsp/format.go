package lsp

import (
	"github.com/jsvensson/huematch/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns the edits that bring a palette file to canonical
// form: one whole-document replacement, or none if it is already formatted.
func formatEdits(content string) []protocol.TextEdit {
	formatted := palette.Format(content)
	if formatted == content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{{
		Range:   fullRange(content),
		NewText: formatted,
	}}
}

func fullRange(content string) protocol.Range {
	lines := splitLines(content)
	last := len(lines) - 1
	return protocol.Range{
		End: protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
	}
}

// textDocumentFormatting handles textDocument/formatting requests. Only
// palette files are formatted.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	if !isPaletteFile(uri) {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return formatEdits(content), nil
}
