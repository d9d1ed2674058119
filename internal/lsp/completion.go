package lsp

import (
	"fmt"
	"regexp"

	"github.com/jsvensson/huematch/internal/color"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hexPrefix matches a color literal being typed at the end of a line.
var hexPrefix = regexp.MustCompile(`#[0-9A-Za-z]*$`)

// complete offers palette colors by name when the cursor follows a '#'.
// Choosing an item replaces the typed literal with the color's hex. If the
// typed text is already a full hex color, items are ordered by distance
// from it.
func complete(content string, pos protocol.Position, opts finder.Options) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	loc := hexPrefix.FindStringIndex(line[:charPos])
	if loc == nil {
		return nil
	}

	typed := line[loc[0]:charPos]
	rng := protocol.Range{
		Start: protocol.Position{Line: pos.Line, Character: uint32(loc[0])},
		End:   protocol.Position{Line: pos.Line, Character: uint32(charPos)},
	}

	if _, err := color.NormalizeHex(typed); err == nil {
		opts.Count = len(paletteOf(opts))
		opts.Threshold = nil
		if matches, err := finder.FindAllClosest(typed, opts); err == nil {
			items := make([]protocol.CompletionItem, 0, len(matches))
			for i, m := range matches {
				detail := fmt.Sprintf("%s · %s %.2f", m.Hex, opts.Formula.Name(), m.Distance)
				items = append(items, completionItem(m.Color, i, rng, detail, typed))
			}
			return items
		}
	}

	entries := paletteOf(opts)
	items := make([]protocol.CompletionItem, 0, len(entries))
	for i, e := range entries {
		items = append(items, completionItem(e.Color, i, rng, e.Hex, "#"+e.Name))
	}
	return items
}

func completionItem(c palette.Color, rank int, rng protocol.Range, detail, filter string) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:         c.Name,
		Kind:          completionKindPtr(protocol.CompletionItemKindColor),
		Detail:        strPtr(detail),
		Documentation: c.Hex,
		FilterText:    strPtr(filter),
		SortText:      strPtr(fmt.Sprintf("%04d", rank)),
		TextEdit: protocol.TextEdit{
			Range:   rng,
			NewText: c.Hex,
		},
	}
}

func paletteOf(opts finder.Options) []palette.Entry {
	if opts.Palette == nil {
		return palette.BuiltinWithLab()
	}
	return opts.Palette
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(content, params.Position, s.searchOptions()), nil
}
