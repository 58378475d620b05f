package web

import "html/template"

// BuildVersion is stamped at build time via -ldflags.
var BuildVersion = ""

type ViewData struct {
	Title           string
	ContentTemplate string
	ContentHTML     template.HTML
	NotePath        string
	NoteTitle       string
	RenderedHTML    template.HTML
	Frontmatter     map[string]any
	Username        string
	ReturnURL       string
}
