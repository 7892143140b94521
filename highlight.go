package code2pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeHighlighter abstracts syntax highlighting to allow fakes in tests.
type codeHighlighter interface {
	Highlight(ctx context.Context, filename, content string) (string, error)
	StyleCSS() (string, error)
}

// chromaHighlighter renders source files to HTML via chroma.
// The formatter emits CSS classes rather than inline styles so the whole
// document shares one stylesheet from StyleCSS.
type chromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// Compile-time interface check.
var _ codeHighlighter = (*chromaHighlighter)(nil)

// ValidateStyle checks that a chroma style name exists in the registry.
// Empty names are valid and resolve to DefaultStyle.
func ValidateStyle(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return nil
}

// StyleNames returns the registered chroma style names, for error hints.
func StyleNames() []string {
	return styles.Names()
}

// newChromaHighlighter creates a highlighter for the given style name.
// The caller is expected to have validated the name via ValidateStyle.
func newChromaHighlighter(styleName string, lineNumbers bool) *chromaHighlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}

	opts := []chromahtml.Option{
		chromahtml.WithClasses(true),
		chromahtml.TabWidth(4),
	}
	if lineNumbers {
		opts = append(opts, chromahtml.WithLineNumbers(true))
	}

	return &chromaHighlighter{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(opts...),
	}
}

// Highlight tokenizes content with a lexer chosen by file name and formats
// it as HTML. Unknown file types fall back to the plain text lexer, so
// every scanned file renders something.
func (h *chromaHighlighter) Highlight(ctx context.Context, filename, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, filename, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, filename, err)
	}

	return buf.String(), nil
}

// StyleCSS returns the stylesheet for the configured chroma style.
func (h *chromaHighlighter) StyleCSS() (string, error) {
	var buf strings.Builder
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: writing style CSS: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}
