package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var calloutMarker = regexp.MustCompile(`^\[!([A-Za-z]+)\][ \t]*`)

// calloutTransformer turns blockquotes opening with a [!type] marker into
// attributed callout blocks:
//
//	> [!note] Remember
//	> body
//
// renders as <blockquote class="callout callout-note" data-callout="note">
// with the marker text removed. Blockquotes without a marker pass through.
type calloutTransformer struct{}

func (t *calloutTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindBlockquote {
			return ast.WalkContinue, nil
		}
		para, ok := n.FirstChild().(*ast.Paragraph)
		if !ok {
			return ast.WalkContinue, nil
		}
		m := calloutMarker.FindStringSubmatch(inlineText(para, source))
		if m == nil {
			return ast.WalkContinue, nil
		}
		if !stripLeadingText(para, source, len(m[0])) {
			return ast.WalkContinue, nil
		}
		kind := strings.ToLower(m[1])
		n.SetAttributeString("class", []byte("callout callout-"+kind))
		n.SetAttributeString("data-callout", []byte(kind))
		return ast.WalkContinue, nil
	})
}

// inlineText concatenates the literal text of an inline container. The
// inline parser may fragment text around brackets, so the marker can span
// several sibling nodes.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			return b.String()
		}
	}
	return b.String()
}

// stripLeadingText removes the first n bytes of literal text from the
// container, dropping fully consumed nodes and trimming a partially
// consumed one. Returns false when the prefix is not plain text.
func stripLeadingText(parent ast.Node, source []byte, n int) bool {
	child := parent.FirstChild()
	for n > 0 && child != nil {
		next := child.NextSibling()
		var value []byte
		switch t := child.(type) {
		case *ast.Text:
			value = t.Segment.Value(source)
		case *ast.String:
			value = t.Value
		default:
			return false
		}
		if len(value) <= n {
			parent.RemoveChild(parent, child)
			n -= len(value)
		} else {
			parent.ReplaceChild(parent, child, ast.NewString(value[n:]))
			n = 0
		}
		child = next
	}
	return n == 0
}
