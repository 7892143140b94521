package code2pdf

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkRender_Basics(t *testing.T) {
	t.Parallel()

	r := newGoldmarkRenderer()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading", "# Title", `<h1 id="title">Title</h1>`},
		{"emphasis", "*emphasized*", "<em>emphasized</em>"},
		{"link", "[text](https://example.com)", `<a href="https://example.com">text</a>`},
		{"gfm strikethrough", "~~gone~~", "<del>gone</del>"},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := r.Render(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Render(%q) = %q, want substring %q", tt.markdown, out, tt.want)
			}
		})
	}
}

func TestGoldmarkRender_FencedCodeUsesClasses(t *testing.T) {
	t.Parallel()

	r := newGoldmarkRenderer()
	out, err := r.Render(context.Background(), "```go\npackage main\n```")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "chroma") {
		t.Errorf("fenced block output missing chroma classes: %q", out)
	}
	if strings.Contains(out, `style="color`) {
		t.Error("fenced block output contains inline styles; expected CSS classes")
	}
}

func TestGoldmarkRender_HeadingAnchors(t *testing.T) {
	t.Parallel()

	// Headings get stable auto-generated IDs so [links](#getting-started)
	// inside a rendered README resolve in the final document.
	r := newGoldmarkRenderer()
	out, err := r.Render(context.Background(), "# Overview\n\n## Getting Started\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, `<h1 id="overview">Overview</h1>`) {
		t.Errorf("h1 missing auto ID: %q", out)
	}
	if !strings.Contains(out, `<h2 id="getting-started">Getting Started</h2>`) {
		t.Errorf("h2 missing auto ID: %q", out)
	}
}

func TestGoldmarkRender_RawHTMLNotPassedThrough(t *testing.T) {
	t.Parallel()

	r := newGoldmarkRenderer()
	out, err := r.Render(context.Background(), `<script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML leaked into output: %q", out)
	}
}

func TestGoldmarkRender_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newGoldmarkRenderer()
	_, err := r.Render(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"docs/guide.markdown", true},
		{"NOTES.MD", true},
		{"main.go", false},
		{"md", false},
		{"readme.md.bak", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := isMarkdownFile(tt.path); got != tt.want {
				t.Errorf("isMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
