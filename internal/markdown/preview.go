package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// previewAttr is the hook a client script uses to attach rich note
// previews to wikilink anchors.
const previewAttr = "data-preview"

// previewTransformer decorates every wiki-link anchor in the finished tree
// with a preview marker attribute.
type previewTransformer struct{}

func (t *previewTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindLink {
			return ast.WalkContinue, nil
		}
		if !hasClass(n, wikiLinkClass) {
			return ast.WalkContinue, nil
		}
		n.SetAttributeString(previewAttr, []byte("note"))
		return ast.WalkContinue, nil
	})
}

func hasClass(n ast.Node, class string) bool {
	v, ok := n.AttributeString("class")
	if !ok {
		return false
	}
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	for _, part := range bytes.Fields(b) {
		if string(part) == class {
			return true
		}
	}
	return false
}
