package notes

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultPath is served when the note route gets no path parameter.
const DefaultPath = "errors.md"

// Note is the document shape returned by the content API. The body is
// decoded as-is; the upstream structure is trusted.
type Note struct {
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter"`
}

// Fetcher retrieves note content from the external API. Any failure, from
// connection errors to non-2xx statuses, yields a fallback document so the
// page always has something to render.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) Fetch(ctx context.Context, relpath string) Note {
	if relpath == "" {
		relpath = DefaultPath
	}
	u := f.baseURL + "/notes/content?relpath=" + url.QueryEscape(relpath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		slog.Warn("build note request", "relpath", relpath, "err", err)
		return fallbackNote()
	}
	resp, err := f.client.Do(req)
	if err != nil {
		slog.Warn("fetch note", "relpath", relpath, "err", err)
		return fallbackNote()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("note api returned non-success", "relpath", relpath, "status", resp.StatusCode)
		return fallbackNote()
	}

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		slog.Warn("decode note body", "relpath", relpath, "err", err)
		return fallbackNote()
	}
	if note.Frontmatter == nil {
		note.Frontmatter = map[string]any{}
	}
	return note
}

func fallbackNote() Note {
	return Note{
		Title:       "Error",
		Content:     "Could not load note.",
		Frontmatter: map[string]any{},
	}
}
