package notes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("relpath")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Home","content":"# Hello","frontmatter":{"tags":["a"]}}`))
	}))
	defer ts.Close()

	f := NewFetcher(ts.URL, time.Second)
	note := f.Fetch(context.Background(), "dir/Home Page.md")
	if gotPath != "/notes/content" {
		t.Fatalf("path=%q want /notes/content", gotPath)
	}
	if gotQuery != "dir/Home Page.md" {
		t.Fatalf("relpath=%q", gotQuery)
	}
	if note.Title != "Home" || note.Content != "# Hello" {
		t.Fatalf("note=%+v", note)
	}
	if _, ok := note.Frontmatter["tags"]; !ok {
		t.Fatalf("frontmatter not decoded: %+v", note.Frontmatter)
	}
}

func TestFetchDefaultPath(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("relpath")
		_, _ = w.Write([]byte(`{"title":"x","content":"y","frontmatter":{}}`))
	}))
	defer ts.Close()

	NewFetcher(ts.URL, time.Second).Fetch(context.Background(), "")
	if gotQuery != DefaultPath {
		t.Fatalf("relpath=%q want %q", gotQuery, DefaultPath)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	note := NewFetcher(ts.URL, time.Second).Fetch(context.Background(), "missing.md")
	if note.Title != "Error" || note.Content != "Could not load note." {
		t.Fatalf("expected fallback note, got %+v", note)
	}
	if note.Frontmatter == nil || len(note.Frontmatter) != 0 {
		t.Fatalf("fallback frontmatter should be empty, got %+v", note.Frontmatter)
	}
}

func TestFetchTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"title":"x","content":"y","frontmatter":{}}`))
	}))
	defer ts.Close()

	note := NewFetcher(ts.URL, 20*time.Millisecond).Fetch(context.Background(), "slow.md")
	if note.Title != "Error" {
		t.Fatalf("expected fallback on timeout, got %+v", note)
	}
}

func TestFetchUnreachable(t *testing.T) {
	note := NewFetcher("http://127.0.0.1:1", 100*time.Millisecond).Fetch(context.Background(), "a.md")
	if note.Title != "Error" {
		t.Fatalf("expected fallback when upstream is unreachable, got %+v", note)
	}
}

func TestFetchBadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":`))
	}))
	defer ts.Close()

	note := NewFetcher(ts.URL, time.Second).Fetch(context.Background(), "a.md")
	if note.Title != "Error" {
		t.Fatalf("expected fallback on malformed body, got %+v", note)
	}
}
