package main

import (
	"errors"
	"os"

	code2pdf "github.com/alnah/go-code2pdf"
	"github.com/alnah/go-code2pdf/internal/assets"
	"github.com/alnah/go-code2pdf/internal/config"
)

// Exit codes for the code2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, code2pdf.ErrBrowserConnect) ||
		errors.Is(err, code2pdf.ErrPageCreate) ||
		errors.Is(err, code2pdf.ErrPageLoad) ||
		errors.Is(err, code2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, code2pdf.ErrScanFailed) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, code2pdf.ErrEmptyRoot) ||
		errors.Is(err, code2pdf.ErrRootNotDir) ||
		errors.Is(err, code2pdf.ErrNoFiles) ||
		errors.Is(err, code2pdf.ErrUnknownStyle) ||
		errors.Is(err, code2pdf.ErrInvalidPageSize) ||
		errors.Is(err, code2pdf.ErrInvalidOrientation) ||
		errors.Is(err, code2pdf.ErrInvalidMargin) ||
		errors.Is(err, code2pdf.ErrInvalidFooterPosition) ||
		errors.Is(err, code2pdf.ErrInvalidMaxFileSize) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidAssetPath) ||
		errors.Is(err, ErrNotADirectory) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
