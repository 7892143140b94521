package code2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.7 // inches, roughly 1.8cm
)

// DefaultStyle is the chroma style used when Input.Style is empty.
const DefaultStyle = "github"

// DefaultMaxFileSize caps individual source files at 1MB. Anything larger
// is almost certainly generated output rather than hand-written code.
const DefaultMaxFileSize int64 = 1 << 20

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Footer configures the PDF footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// TOC configures the table of contents page.
type TOC struct {
	Title string // heading above the entries (empty = no heading)
}

// ExcludeRules controls which directory entries the scanner skips.
type ExcludeRules struct {
	Dirs          []string // directory base names to prune (e.g. ".git")
	Files         []string // file base names to skip (e.g. "go.sum")
	MaxFileSize   int64    // bytes, 0 = DefaultMaxFileSize
	IncludeHidden bool     // include dot-files and dot-directories
}

// DefaultExcludeDirs lists directories that never belong in project
// documentation: VCS metadata, dependency trees, caches, build output.
func DefaultExcludeDirs() []string {
	return []string{
		".git", ".hg", ".svn",
		"node_modules", "vendor", "__pycache__",
		".idea", ".vscode",
		"dist", "build", "target", ".cache",
	}
}

// DefaultExcludeFiles lists file names that add noise rather than signal.
func DefaultExcludeFiles() []string {
	return []string{
		".DS_Store",
		"go.sum", "package-lock.json", "yarn.lock", "Cargo.lock", "poetry.lock",
	}
}

// DefaultExcludeRules returns the rules applied when Input.Exclude is nil.
func DefaultExcludeRules() *ExcludeRules {
	return &ExcludeRules{
		Dirs:        DefaultExcludeDirs(),
		Files:       DefaultExcludeFiles(),
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Validate checks that exclusion rules are valid.
// Returns nil if r is nil (nil means use defaults).
func (r *ExcludeRules) Validate() error {
	if r == nil {
		return nil
	}
	if r.MaxFileSize < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means default)", ErrInvalidMaxFileSize, r.MaxFileSize)
	}
	return nil
}

// maxFileSize resolves the effective size cap.
func (r *ExcludeRules) maxFileSize() int64 {
	if r == nil || r.MaxFileSize == 0 {
		return DefaultMaxFileSize
	}
	return r.MaxFileSize
}

// Input contains conversion parameters.
type Input struct {
	Root           string        // project root directory (required)
	Title          string        // document title (empty = base name of Root)
	Exclude        *ExcludeRules // nil = DefaultExcludeRules()
	Style          string        // chroma style name (empty = DefaultStyle)
	LineNumbers    bool          // render line numbers in code blocks
	RenderMarkdown bool          // render .md files as formatted HTML
	CSS            string        // custom document CSS (optional)
	NoStyle        bool          // skip all CSS injection (base, chroma, custom)
	Page           *PageSettings // page settings (optional, nil = defaults)
	Footer         *Footer       // footer config (optional, nil = no footer)
	TOC            *TOC          // table of contents (optional, nil = no TOC)
	HTMLOnly       bool          // skip PDF rendering, return HTML only
}

// Result holds the output of a conversion.
type Result struct {
	PDF     []byte        // rendered PDF (nil when Input.HTMLOnly is set)
	HTML    string        // assembled HTML document
	Files   []string      // relative paths of included files, in document order
	Skipped []SkippedFile // files excluded during the scan, with reasons
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("code2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
