package code2pdf

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// defaultFontFamily is the standard font stack for generated content and
// PDF footers.
const defaultFontFamily = "'Helvetica Neue', Helvetica, Arial, sans-serif"

// documentTemplate wraps the assembled body in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// fileSection is one highlighted file ready for assembly.
type fileSection struct {
	RelPath string // heading and TOC label
	HTML    string // highlighted (or rendered) body
}

// fileAnchor returns the anchor ID for the i-th file section.
// Anchors are stable per document order: file-0, file-1, ...
func fileAnchor(i int) string {
	return fmt.Sprintf("file-%d", i)
}

// documentAssembler abstracts HTML document assembly for tests.
type documentAssembler interface {
	Assemble(ctx context.Context, title string, sections []fileSection, toc *TOC) (string, error)
}

// htmlAssembler builds the final HTML document: optional TOC page followed
// by one section per file, each anchored for TOC navigation.
type htmlAssembler struct{}

// Compile-time interface check.
var _ documentAssembler = (*htmlAssembler)(nil)

// Assemble produces a standalone HTML5 document from the file sections.
func (a *htmlAssembler) Assemble(ctx context.Context, title string, sections []fileSection, toc *TOC) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var body strings.Builder

	if toc != nil {
		body.WriteString(buildTOC(title, toc.Title, sections))
	}

	for i, sec := range sections {
		body.WriteString(`<section class="source-file" id="`)
		body.WriteString(fileAnchor(i))
		body.WriteString(`">`)
		body.WriteString(`<h2 class="file-path">`)
		body.WriteString(html.EscapeString(sec.RelPath))
		body.WriteString(`</h2>`)
		body.WriteString(sec.HTML)
		body.WriteString(`</section>`)
		body.WriteString("\n")
	}

	return fmt.Sprintf(documentTemplate, html.EscapeString(title), body.String()), nil
}

// buildTOC generates the table of contents page: document title, optional
// TOC heading, and one link per file section.
func buildTOC(title, tocTitle string, sections []fileSection) string {
	var buf strings.Builder

	buf.WriteString(`<nav class="toc">`)
	buf.WriteString(`<h1>`)
	buf.WriteString(html.EscapeString(title))
	buf.WriteString(`</h1>`)

	if tocTitle != "" {
		buf.WriteString(`<h2 class="toc-title">`)
		buf.WriteString(html.EscapeString(tocTitle))
		buf.WriteString(`</h2>`)
	}

	buf.WriteString(`<ol class="toc-list">`)
	for i, sec := range sections {
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(fileAnchor(i))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(sec.RelPath))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ol></nav>`)
	buf.WriteString("\n")

	return buf.String()
}

// cssInjector defines the contract for CSS injection into HTML.
type cssInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// cssInjection injects CSS as a <style> block into HTML content.
type cssInjection struct{}

// Compile-time interface check.
var _ cssInjector = (*cssInjection)(nil)

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *cssInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
