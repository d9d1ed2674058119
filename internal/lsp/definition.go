package lsp

import (
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// definition resolves the hex literal at pos to the color block of its
// nearest match in the loaded palette file. It returns nil for the built-in
// palette, which has no source.
func definition(result *AnalysisResult, pos protocol.Position, opts finder.Options, file *palette.File, fileURI protocol.DocumentUri) *protocol.Location {
	if file == nil {
		return nil
	}
	cl, ok := result.colorAt(pos)
	if !ok {
		return nil
	}

	nearest, err := finder.FindNearest(cl.Text, opts)
	if err != nil || nearest == nil {
		return nil
	}

	rng, ok := file.Range(nearest.Color)
	if !ok {
		return nil
	}
	return &protocol.Location{
		URI:   fileURI,
		Range: hclRangeToLSP(rng),
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	result := s.docs.Result(string(params.TextDocument.URI))
	if result == nil {
		return nil, nil
	}

	s.mu.RLock()
	opts, file, fileURI := s.search, s.paletteFile, s.paletteURI
	s.mu.RUnlock()

	if loc := definition(result, params.Position, opts, file, fileURI); loc != nil {
		return *loc, nil
	}
	return nil, nil
}
