package markdown

import (
	"bytes"
	stdhtml "html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// codeLanguages is the fixed set of languages that get syntax highlighting.
// Anything else renders as a plain code block.
var codeLanguages = map[string]bool{
	"javascript": true,
	"docker":     true,
	"py":         true,
	"markdown":   true,
	"yaml":       true,
	"toml":       true,
	"bash":       true,
}

// codeHighlighter renders fenced code blocks through chroma, with the
// style chosen by the pipeline's theme.
type codeHighlighter struct {
	styleName string
}

func newCodeHighlighter(styleName string) *codeHighlighter {
	return &codeHighlighter{styleName: styleName}
}

func (h *codeHighlighter) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, h.render)
}

func (h *codeHighlighter) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	language := string(n.Language(source))
	if !codeLanguages[language] {
		return h.renderPlain(w, language, code.String())
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return h.renderPlain(w, language, code.String())
	}

	style := styles.Get(h.styleName)
	if style == nil {
		style = styles.Fallback
	}
	iterator, err := lexer.Tokenise(nil, code.String())
	if err != nil {
		return h.renderPlain(w, language, code.String())
	}
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(w, style, iterator); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

func (h *codeHighlighter) renderPlain(w util.BufWriter, language, code string) (ast.WalkStatus, error) {
	if language != "" {
		_, _ = w.WriteString(`<pre><code class="language-` + stdhtml.EscapeString(language) + `">`)
	} else {
		_, _ = w.WriteString("<pre><code>")
	}
	_, _ = w.WriteString(stdhtml.EscapeString(code))
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkContinue, nil
}
