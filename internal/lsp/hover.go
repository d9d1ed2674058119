package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huematch/internal/finder"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hoverAlternatives is the number of runner-up names shown in a hover.
const hoverAlternatives = 3

// hover produces a Hover response for the given cursor position. For a hex
// literal it shows the nearest palette name, its hex and distance, and the
// next closest names. Returns nil if no color is found at the position.
func hover(result *AnalysisResult, pos protocol.Position, opts finder.Options) *protocol.Hover {
	cl, ok := result.colorAt(pos)
	if !ok {
		return nil
	}

	opts.Count = 1 + hoverAlternatives
	opts.Threshold = nil
	matches, err := finder.FindAllClosest(cl.Text, opts)
	if err != nil {
		log.Warningf("hover on %s: %s", cl.Text, err)
		return nil
	}

	var md strings.Builder
	if len(matches) == 0 {
		fmt.Fprintf(&md, "`%s` · `%s`", cl.Color.Hex(), cl.Color.CSS())
	} else {
		best := matches[0]
		fmt.Fprintf(&md, "**%s** `%s`\n\n", best.Name, best.Hex)
		if best.Distance == 0 {
			fmt.Fprintf(&md, "exact match · `%s`", cl.Color.CSS())
		} else {
			fmt.Fprintf(&md, "%s %.2f from `%s` · `%s`", opts.Formula.Name(), best.Distance, cl.Color.Hex(), cl.Color.CSS())
		}

		if alts := matches[1:]; len(alts) > 0 {
			md.WriteString("\n\nAlso close:")
			for _, m := range alts {
				fmt.Fprintf(&md, "\n- %s `%s` (%.2f)", m.Name, m.Hex, m.Distance)
			}
		}
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md.String(),
		},
		Range: &cl.Range,
	}
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	result := s.docs.Result(string(params.TextDocument.URI))
	if result == nil {
		return nil, nil
	}
	return hover(result, params.Position, s.searchOptions()), nil
}
