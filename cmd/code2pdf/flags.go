package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// scanFlags holds traversal and filtering flags.
type scanFlags struct {
	excludeDirs   []string
	excludeFiles  []string
	includeHidden bool
	maxFileSize   int64
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	style          string
	lineNumbers    bool
	renderMarkdown bool
}

// styleFlags holds document CSS flags.
type styleFlags struct {
	css       string // Document stylesheet name or CSS file path
	assetPath string // Override asset directory
	noStyle   bool   // Disable CSS styling
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	pageNumber bool
	disabled   bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title    string
	disabled bool
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// appFlags holds all flags for the generator.
type appFlags struct {
	common     commonFlags
	output     string
	title      string
	workers    int
	timeout    string
	version    bool
	scan       scanFlags
	highlight  highlightFlags
	style      styleFlags
	page       pageFlags
	footer     footerFlags
	toc        tocFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and skipped files")
}

// addScanFlags adds traversal flags to a FlagSet.
func addScanFlags(fs *flag.FlagSet, f *scanFlags) {
	fs.StringArrayVar(&f.excludeDirs, "exclude-dir", nil, "directory name to skip (repeatable)")
	fs.StringArrayVar(&f.excludeFiles, "exclude-file", nil, "file name to skip (repeatable)")
	fs.BoolVar(&f.includeHidden, "include-hidden", false, "include dot-files and dot-directories")
	fs.Int64Var(&f.maxFileSize, "max-file-size", 0, "max file size in bytes (0 = default 1MB)")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "chroma highlight style (default: github)")
	fs.BoolVar(&f.lineNumbers, "line-numbers", false, "render line numbers in code blocks")
	fs.BoolVar(&f.renderMarkdown, "render-markdown", false, "render .md files instead of highlighting them")
}

// addStyleFlags adds document CSS flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.css, "css", "", "document stylesheet name or CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// newFlagSet registers every flag on a fresh FlagSet bound to f.
func newFlagSet(f *appFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("code2pdf", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = project directory name)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addScanFlags(fs, &f.scan)
	addHighlightFlags(fs, &f.highlight)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addTOCFlags(fs, &f.toc)
	addOutputFlags(fs, &f.outputMode)

	return fs
}

// parseFlags parses all flags and returns positional args.
func parseFlags(args []string) (*appFlags, []string, error) {
	f := &appFlags{}
	fs := newFlagSet(f)
	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
