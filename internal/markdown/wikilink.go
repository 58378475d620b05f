package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// wikiLinkClass marks anchors produced from [[...]] syntax. The preview
// stage and client-side scripts key off it.
const wikiLinkClass = "wiki-link"

// FormatWikiPath normalizes a wikilink target into an absolute href:
// surrounding slashes are stripped and spaces in the final segment are
// percent-encoded. Spaces in intermediate segments are left alone.
func FormatWikiPath(path string) string {
	clean := strings.Trim(path, "/")
	segments := strings.Split(clean, "/")
	if len(segments) > 0 {
		last := len(segments) - 1
		segments[last] = strings.ReplaceAll(segments[last], " ", "%20")
	}
	return "/" + strings.Join(segments, "/")
}

// wikiLinkParser parses [[path]] and [[path|alias]] spans into anchor
// elements followed by a forced line break. Text around a span is left to
// the regular inline parsers, so surrounding literals survive untouched.
type wikiLinkParser struct{}

func (p *wikiLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikiLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 5 || line[0] != '[' || line[1] != '[' {
		return nil
	}
	end := bytes.Index(line, []byte("]]"))
	if end < 3 {
		return nil
	}
	content := line[2:end]
	if bytes.IndexByte(content, ']') >= 0 {
		return nil
	}
	raw := strings.TrimSpace(string(content))
	if raw == "" {
		return nil
	}

	pathPart := raw
	alias := raw
	if strings.Contains(raw, "|") {
		parts := strings.Split(raw, "|")
		pathPart = strings.TrimSpace(parts[0])
		alias = strings.TrimSpace(parts[1])
	}

	block.Advance(end + 2)

	link := ast.NewLink()
	link.Destination = []byte(FormatWikiPath(pathPart))
	link.SetAttributeString("class", []byte(wikiLinkClass))
	link.AppendChild(link, ast.NewString([]byte(alias)))
	parent.AppendChild(parent, link)

	// Each wikilink starts the following text on a new line. SetCode
	// makes the renderer emit the value verbatim.
	br := ast.NewString([]byte("<br>\n"))
	br.SetCode(true)
	return br
}
