package markdown

import (
	"strings"
	"testing"
)

func TestFormatWikiPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Home", want: "/Home"},
		{in: "/Home/", want: "/Home"},
		{in: "Projects/Q1", want: "/Projects/Q1"},
		{in: "/My Notes/Sub Page", want: "/My Notes/Sub%20Page"},
		{in: "a/b c/d e", want: "/a/b c/d%20e"},
		{in: "//nested//path/", want: "/nested//path"},
	}
	for _, tt := range tests {
		if got := FormatWikiPath(tt.in); got != tt.want {
			t.Fatalf("FormatWikiPath(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := Get(ThemeLight, false).Render([]byte(src))
	if err != nil {
		t.Fatalf("Render(%q): %v", src, err)
	}
	return out
}

func TestWikiLinkBasic(t *testing.T) {
	out := render(t, "see [[Home]] and [[Projects/Q1|Q1 Plan]]")

	mustContain(t, out, `href="/Home"`)
	mustContain(t, out, `href="/Projects/Q1"`)
	mustContain(t, out, "wiki-link")
	mustContain(t, out, ">Home</a>")
	mustContain(t, out, ">Q1 Plan</a>")
	mustContain(t, out, "<br")

	// Literal text around the links survives in order: "see " before the
	// first anchor, " and " between the break and the second anchor.
	first := strings.Index(out, `href="/Home"`)
	second := strings.Index(out, `href="/Projects/Q1"`)
	and := strings.Index(out, " and ")
	see := strings.Index(out, "see ")
	br := strings.Index(out, "<br")
	if !(see < first && first < br && br < and && and < second) {
		t.Fatalf("unexpected ordering in %q", out)
	}
}

func TestWikiLinkAliasIsPathByDefault(t *testing.T) {
	// The HTML serializer percent-encodes the remaining spaces, so the
	// href distinction FormatWikiPath draws between segments shows up as
	// uniform %20 here; TestFormatWikiPath covers the raw form.
	out := render(t, "[[My Notes/Sub Page]]")
	mustContain(t, out, `href="/My%20Notes/Sub%20Page"`)
	mustContain(t, out, ">My Notes/Sub Page</a>")
}

func TestWikiLinkPreviewMarker(t *testing.T) {
	out := render(t, "[[Home]]")
	mustContain(t, out, `data-preview="note"`)
}

func TestWikiLinkNoMatchUntouched(t *testing.T) {
	out := render(t, "just some text")
	if out != "<p>just some text</p>\n" {
		t.Fatalf("plain text reconstructed: %q", out)
	}
}

func TestWikiLinkNotTriggered(t *testing.T) {
	tests := []string{
		"a [single] bracket",
		"[[]]",
		"unterminated [[link",
		"[[a]b]]",
	}
	for _, tt := range tests {
		out := render(t, tt)
		if strings.Contains(out, "wiki-link") {
			t.Fatalf("render(%q) produced a wikilink: %q", tt, out)
		}
	}
}

func TestWikiLinkRegularLinksStillWork(t *testing.T) {
	out := render(t, "[text](https://example.com)")
	mustContain(t, out, `href="https://example.com"`)
	if strings.Contains(out, "wiki-link") {
		t.Fatalf("regular link marked as wikilink: %q", out)
	}
}

func mustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}
