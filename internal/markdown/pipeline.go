package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/anchor"
	"go.abhg.dev/goldmark/mermaid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a configured theme name onto a known theme, defaulting
// to light.
func ParseTheme(raw string) Theme {
	if strings.EqualFold(strings.TrimSpace(raw), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

func chromaStyle(theme Theme) string {
	if theme == ThemeDark {
		return "github-dark"
	}
	return "github"
}

// Pipeline is a configured markdown processor. Rendering always ends in
// sanitization: note content comes from an external source and the
// sanitizer is the only defense against injected markup.
type Pipeline struct {
	theme  Theme
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

var (
	cacheMu sync.Mutex
	cache   = map[Theme]*Pipeline{}
)

// Get returns the process-wide pipeline for theme, building it on first
// use. forceReinit discards and replaces the cached instance for that
// theme unconditionally.
func Get(theme Theme, forceReinit bool) *Pipeline {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cache[theme]; ok && !forceReinit {
		return p
	}
	p := newPipeline(theme)
	cache[theme] = p
	return p
}

func newPipeline(theme Theme) *Pipeline {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			mathjax.MathJax,
			&mermaid.Extender{RenderMode: mermaid.RenderModeClient},
			&anchor.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithInlineParsers(
				util.Prioritized(&wikiLinkParser{}, 199),
			),
			parser.WithASTTransformers(
				util.Prioritized(&calloutTransformer{}, 600),
				util.Prioritized(&previewTransformer{}, 700),
			),
		),
		goldmark.WithRendererOptions(
			// Raw HTML in note content is let through here and stripped
			// by the terminal sanitizer instead.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeHighlighter(chromaStyle(theme)), 200),
			),
		),
	)
	return &Pipeline{theme: theme, md: md, policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("class").OnElements("a", "blockquote", "code", "div", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "span")
	p.AllowAttrs("style").OnElements("code", "pre", "span")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowDataAttributes()
	return p
}

func (p *Pipeline) Theme() Theme {
	return p.theme
}

// Render converts markdown to sanitized HTML.
func (p *Pipeline) Render(src []byte) (string, error) {
	var b bytes.Buffer
	if err := p.md.Convert(src, &b); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return p.policy.Sanitize(b.String()), nil
}
