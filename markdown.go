package code2pdf

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer abstracts markdown-to-HTML rendering for tests.
type markdownRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// goldmarkRenderer renders markdown files as formatted HTML fragments using
// goldmark (pure Go). Fenced code blocks go through chroma with CSS classes
// so they pick up the same stylesheet as the highlighted source files.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// Compile-time interface check.
var _ markdownRenderer = (*goldmarkRenderer)(nil)

// newGoldmarkRenderer creates a goldmarkRenderer with GFM extensions.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // share the document stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Heading anchors for in-document links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used. Raw HTML inside a
			// scanned README must not reach the rendered document.
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render converts markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *goldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// isMarkdownFile reports whether a path carries a markdown extension.
func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
