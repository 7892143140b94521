package code2pdf

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-code2pdf/internal/assets"
)

// Service orchestrates the project-to-PDF pipeline.
type Service struct {
	cfg            serviceConfig
	scanner        projectScanner
	newHighlighter func(styleName string, lineNumbers bool) codeHighlighter
	markdown       markdownRenderer
	assembler      documentAssembler
	cssInjector    cssInjector
	pdfConverter   pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:     serviceConfig{timeout: defaultTimeout},
		scanner: &fsScanner{},
		newHighlighter: func(styleName string, lineNumbers bool) codeHighlighter {
			return newChromaHighlighter(styleName, lineNumbers)
		},
		markdown:    newGoldmarkRenderer(),
		assembler:   &htmlAssembler{},
		cssInjector: &cssInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Convert runs the full pipeline and returns the assembled document.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Scan the project tree
	files, skipped, err := s.scanner.Scan(ctx, input.Root, input.Exclude)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, input.Root)
	}

	// Highlight every file (markdown files optionally rendered instead)
	highlighter := s.newHighlighter(input.Style, input.LineNumbers)
	sections := make([]fileSection, 0, len(files))
	relPaths := make([]string, 0, len(files))
	for _, f := range files {
		var sectionHTML string
		if input.RenderMarkdown && isMarkdownFile(f.RelPath) {
			sectionHTML, err = s.markdown.Render(ctx, f.Content)
		} else {
			sectionHTML, err = highlighter.Highlight(ctx, f.RelPath, f.Content)
		}
		if err != nil {
			return nil, fmt.Errorf("processing %s: %w", f.RelPath, err)
		}
		sections = append(sections, fileSection{RelPath: f.RelPath, HTML: sectionHTML})
		relPaths = append(relPaths, f.RelPath)
	}

	// Assemble the document
	title := input.Title
	if title == "" {
		title = filepath.Base(filepath.Clean(input.Root))
	}
	htmlContent, err := s.assembler.Assemble(ctx, title, sections, input.TOC)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	// Inject CSS: base document stylesheet, chroma style, then user CSS
	if !input.NoStyle {
		cssContent, err := s.buildCSS(highlighter, input.CSS)
		if err != nil {
			return nil, err
		}
		htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	result := &Result{
		HTML:    htmlContent,
		Files:   relPaths,
		Skipped: skipped,
	}

	if input.HTMLOnly {
		return result, nil
	}

	// Convert to PDF
	pdfOpts := &pdfOptions{
		Footer: input.Footer,
		Page:   input.Page,
	}
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// buildCSS concatenates the embedded base stylesheet, the chroma style
// sheet, and the caller's CSS, in ascending precedence order.
func (s *Service) buildCSS(highlighter codeHighlighter, userCSS string) (string, error) {
	baseCSS, err := assets.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return "", fmt.Errorf("loading base stylesheet: %w", err)
	}

	styleCSS, err := highlighter.StyleCSS()
	if err != nil {
		return "", err
	}

	return baseCSS + "\n" + styleCSS + "\n" + userCSS, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Root == "" {
		return ErrEmptyRoot
	}
	if err := ValidateStyle(input.Style); err != nil {
		return err
	}
	if err := input.Exclude.Validate(); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return nil
}
