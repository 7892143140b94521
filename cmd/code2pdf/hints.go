package main

import (
	"context"
	"errors"

	code2pdf "github.com/alnah/go-code2pdf"
	"github.com/alnah/go-code2pdf/internal/config"
	"github.com/alnah/go-code2pdf/internal/hints"
)

// hintFor maps an error to an actionable hint string, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, code2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, code2pdf.ErrNoFiles):
		return hints.ForNoFiles()
	case errors.Is(err, code2pdf.ErrUnknownStyle):
		return hints.ForStyleNotFound(code2pdf.StyleNames())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	default:
		return ""
	}
}
