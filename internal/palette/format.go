package palette

import (
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/huematch/internal/color"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format returns palette file source in canonical HCL style. Literal hex
// values of color blocks are rewritten to "#RRGGBB"; function calls and
// invalid literals are left as written.
//
// Source that does not parse is still whitespace-formatted, so editors can
// format while the user is typing.
func Format(content string) string {
	src := []byte(content)
	if f, diags := hclwrite.ParseConfig(src, "", hcl.Pos{Line: 1, Column: 1}); !diags.HasErrors() {
		canonicalizeHex(f.Body())
		src = f.Bytes()
	}

	formatted := string(hclwrite.Format(src))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	return formatted
}

func canonicalizeHex(body *hclwrite.Body) {
	for _, block := range body.Blocks() {
		if block.Type() != "color" {
			continue
		}
		attr := block.Body().GetAttribute("hex")
		if attr == nil {
			continue
		}
		lit, ok := quotedLiteral(attr.Expr().BuildTokens(nil))
		if !ok {
			continue
		}
		hex, err := color.NormalizeHex(lit)
		if err != nil || hex == lit {
			continue
		}
		block.Body().SetAttributeValue("hex", cty.StringVal(hex))
	}
}

// quotedLiteral returns the content of a plain quoted string with no
// interpolation.
func quotedLiteral(tokens hclwrite.Tokens) (string, bool) {
	if len(tokens) != 3 {
		return "", false
	}
	if tokens[0].Type != hclsyntax.TokenOQuote ||
		tokens[1].Type != hclsyntax.TokenQuotedLit ||
		tokens[2].Type != hclsyntax.TokenCQuote {
		return "", false
	}
	return string(tokens[1].Bytes), true
}
