package code2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyRoot      = errors.New("project root cannot be empty")
	ErrRootNotDir     = errors.New("project root is not a directory")
	ErrNoFiles        = errors.New("no text files found in project")
	ErrScanFailed     = errors.New("project scan failed")
	ErrHighlight      = errors.New("syntax highlighting failed")
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Highlight validation errors.
	ErrUnknownStyle = errors.New("unknown highlight style")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Exclusion rule validation errors.
	ErrInvalidMaxFileSize = errors.New("invalid max file size")
)
