package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/huematch/internal/deltae"
	"github.com/jsvensson/huematch/internal/finder"
	"github.com/jsvensson/huematch/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func hoverValue(t *testing.T, h *protocol.Hover) string {
	t.Helper()
	if h == nil {
		t.Fatal("expected non-nil hover result")
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}
	return mc.Value
}

func TestHover_NearestName(t *testing.T) {
	content := "accent = \"#FFEBCC\"\n"
	result := Analyze("file:///theme.txt", content)

	h := hover(result, protocol.Position{Line: 0, Character: 12}, finder.Options{})
	md := hoverValue(t, h)

	for _, want := range []string{
		"**Blanched Almond** `#FFEBCD`",
		"CIE76 0.51 from `#FFEBCC`",
		"rgb(255, 235, 204)",
		"Also close:",
		"Papaya Whip `#FFEFD5` (3.29)",
		"Cornsilk",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("hover should contain %q, got:\n%s", want, md)
		}
	}

	if h.Range == nil || h.Range.Start.Character != 10 || h.Range.End.Character != 17 {
		t.Errorf("hover range should cover the literal, got %+v", h.Range)
	}
}

func TestHover_ExactMatch(t *testing.T) {
	result := Analyze("file:///a.txt", "#ffebcd")
	md := hoverValue(t, hover(result, protocol.Position{}, finder.Options{}))

	if !strings.Contains(md, "**Blanched Almond**") || !strings.Contains(md, "exact match") {
		t.Errorf("unexpected hover:\n%s", md)
	}
}

func TestHover_Formula(t *testing.T) {
	result := Analyze("file:///a.txt", "#EE0000")

	md := hoverValue(t, hover(result, protocol.Position{Character: 1}, finder.Options{Formula: deltae.FormulaCIEDE2000}))
	if !strings.HasPrefix(md, "**Red Devil**") {
		t.Errorf("expected Red Devil under CIEDE2000, got:\n%s", md)
	}
	if !strings.Contains(md, "CIEDE2000") {
		t.Errorf("expected formula name in hover, got:\n%s", md)
	}

	md = hoverValue(t, hover(result, protocol.Position{Character: 1}, finder.Options{}))
	if !strings.HasPrefix(md, "**Red (Web)**") {
		t.Errorf("expected Red (Web) under CIE76, got:\n%s", md)
	}
}

func TestHover_EmptyPalette(t *testing.T) {
	result := Analyze("file:///a.txt", "#EB6F92")
	md := hoverValue(t, hover(result, protocol.Position{Character: 3}, finder.Options{Palette: []palette.Entry{}}))

	if md != "`#EB6F92` · `rgb(235, 111, 146)`" {
		t.Errorf("unexpected hover for empty palette: %q", md)
	}
}

func TestHover_NoColor(t *testing.T) {
	content := "no colors here #12345\n"
	result := Analyze("file:///a.txt", content)

	if h := hover(result, protocol.Position{Line: 0, Character: 16}, finder.Options{}); h != nil {
		t.Errorf("expected nil hover, got %+v", h)
	}
	if h := hover(nil, protocol.Position{}, finder.Options{}); h != nil {
		t.Errorf("expected nil hover for nil result, got %+v", h)
	}
}
