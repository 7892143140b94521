package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	code2pdf "github.com/alnah/go-code2pdf"
	"github.com/alnah/go-code2pdf/internal/assets"
	"github.com/alnah/go-code2pdf/internal/config"
	"github.com/alnah/go-code2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no project directory specified")
	ErrNotADirectory      = errors.New("input is not a directory")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultOutputExt is appended to the project base name when no output
// name is configured.
const defaultOutputExt = ".pdf"

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input code2pdf.Input) (*code2pdf.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*code2pdf.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// ProjectToConvert represents a single project root to process.
type ProjectToConvert struct {
	Root       string
	OutputPath string
}

// GenerationResult holds the outcome of a single project conversion.
type GenerationResult struct {
	Root       string
	OutputPath string
	FileCount  int
	Skipped    []code2pdf.SkippedFile
	Err        error
	Duration   time.Duration
}

// generationParams groups parameters shared across the batch.
type generationParams struct {
	title          string
	css            string
	noStyle        bool
	style          string
	lineNumbers    bool
	renderMarkdown bool
	exclude        *code2pdf.ExcludeRules
	page           *code2pdf.PageSettings
	footer         *code2pdf.Footer
	toc            *code2pdf.TOC
	html           bool
	htmlOnly       bool
	timeout        time.Duration
}

// runGenerate orchestrates the generation process.
func runGenerate(ctx context.Context, positionalArgs []string, flags *appFlags, pool Pool, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Parse the per-project timeout
	timeout, err := parseTimeout(flags.timeout)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve project roots
	roots, err := resolveRoots(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Discover outputs for each root
	projects, err := discoverProjects(roots, flags.output, cfg)
	if err != nil {
		return err
	}

	// Resolve the asset loader (config may point at a custom directory)
	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		loader, err = assets.NewFilesystemLoader(cfg.Assets.BasePath)
		if err != nil {
			return err
		}
	}

	// Resolve custom document CSS
	cssContent, err := resolveCSSContent(cfg.CSS.Style, loader)
	if err != nil {
		return err
	}

	// Bundle generation parameters
	params := &generationParams{
		title:          cfg.Document.Title,
		css:            cssContent,
		noStyle:        flags.style.noStyle,
		style:          cfg.Highlight.Style,
		lineNumbers:    cfg.Highlight.LineNumbers,
		renderMarkdown: cfg.Markdown.Render,
		exclude:        buildExcludeRules(cfg),
		page:           buildPageSettings(cfg),
		footer:         buildFooterData(cfg, flags.footer.disabled),
		toc:            buildTOCData(cfg, flags.toc.disabled),
		html:           flags.outputMode.html,
		htmlOnly:       flags.outputMode.htmlOnly,
		timeout:        timeout,
	}

	// Convert projects
	results := generateBatch(ctx, pool, projects, params)

	// Print results
	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d generation(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *appFlags, cfg *config.Config) {
	// Document flags
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}

	// Scan flags: CLI exclusions extend config exclusions
	cfg.Scan.ExcludeDirs = append(cfg.Scan.ExcludeDirs, flags.scan.excludeDirs...)
	cfg.Scan.ExcludeFiles = append(cfg.Scan.ExcludeFiles, flags.scan.excludeFiles...)
	if flags.scan.includeHidden {
		cfg.Scan.IncludeHidden = true
	}
	if flags.scan.maxFileSize > 0 {
		cfg.Scan.MaxFileSize = flags.scan.maxFileSize
	}

	// Highlight flags
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
	}
	if flags.highlight.lineNumbers {
		cfg.Highlight.LineNumbers = true
	}
	if flags.highlight.renderMarkdown {
		cfg.Markdown.Render = true
	}

	// Style flags
	if flags.style.css != "" {
		cfg.CSS.Style = flags.style.css
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Footer flags
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
		cfg.Footer.Enabled = true
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}

	// TOC flags
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
		cfg.TOC.Enabled = true
	}
	if flags.toc.disabled {
		cfg.TOC.Enabled = false
	}
	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	}
}

// resolveRoots determines the project roots from args or config.
func resolveRoots(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// discoverProjects validates roots and resolves one output path per root.
func discoverProjects(roots []string, flagOutput string, cfg *config.Config) ([]ProjectToConvert, error) {
	projects := make([]ProjectToConvert, 0, len(roots))
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
		}

		outPath := resolveOutputPath(root, flagOutput, cfg, len(roots) == 1)
		projects = append(projects, ProjectToConvert{Root: root, OutputPath: outPath})
	}
	return projects, nil
}

// resolveOutputPath determines the PDF output path for a project root.
// Priority: explicit .pdf output flag (single root only) > output dir +
// configured name (single root only) > output dir + <base>.pdf.
func resolveOutputPath(root, flagOutput string, cfg *config.Config, single bool) string {
	base := filepath.Base(filepath.Clean(root))

	outputDir := cfg.Output.Dir
	if flagOutput != "" {
		if single && strings.HasSuffix(flagOutput, defaultOutputExt) {
			return flagOutput
		}
		outputDir = flagOutput
	}

	name := base + defaultOutputExt
	if single && cfg.Output.Name != "" {
		name = cfg.Output.Name
	}

	if outputDir == "" {
		return name
	}
	return filepath.Join(outputDir, name)
}

// parseTimeout parses the --timeout flag value. Empty means no limit.
func parseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s (must be positive)", ErrInvalidTimeout, value)
	}
	return d, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > code2pdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, code2pdf.MaxPoolSize)
	}
	return nil
}

// resolveCSSContent resolves document CSS from a style name or file path.
// Names go through the asset loader; paths are read directly.
func resolveCSSContent(nameOrPath string, loader assets.AssetLoader) (string, error) {
	if nameOrPath == "" {
		return "", nil
	}

	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return string(content), nil
	}

	return loader.LoadStyle(nameOrPath)
}

// buildExcludeRules creates code2pdf.ExcludeRules from config, extending
// the library defaults rather than replacing them.
func buildExcludeRules(cfg *config.Config) *code2pdf.ExcludeRules {
	rules := code2pdf.DefaultExcludeRules()
	rules.Dirs = append(rules.Dirs, cfg.Scan.ExcludeDirs...)
	rules.Files = append(rules.Files, cfg.Scan.ExcludeFiles...)
	rules.IncludeHidden = cfg.Scan.IncludeHidden
	if cfg.Scan.MaxFileSize > 0 {
		rules.MaxFileSize = cfg.Scan.MaxFileSize
	}
	return rules
}

// buildPageSettings creates code2pdf.PageSettings from config.
// Returns nil when nothing is configured (library defaults apply).
func buildPageSettings(cfg *config.Config) *code2pdf.PageSettings {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil
	}

	ps := &code2pdf.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	// Apply defaults for unset fields
	if ps.Size == "" {
		ps.Size = code2pdf.PageSizeA4
	}
	if ps.Orientation == "" {
		ps.Orientation = code2pdf.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = code2pdf.DefaultMargin
	}

	return ps
}

// buildFooterData creates code2pdf.Footer from config.
func buildFooterData(cfg *config.Config, noFooter bool) *code2pdf.Footer {
	if noFooter || !cfg.Footer.Enabled {
		return nil
	}

	return &code2pdf.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Text:           cfg.Footer.Text,
	}
}

// buildTOCData creates code2pdf.TOC from config.
func buildTOCData(cfg *config.Config, noTOC bool) *code2pdf.TOC {
	if noTOC || !cfg.TOC.Enabled {
		return nil
	}

	return &code2pdf.TOC{Title: cfg.TOC.Title}
}

// generateBatch processes projects concurrently using the service pool.
func generateBatch(ctx context.Context, pool Pool, projects []ProjectToConvert, params *generationParams) []GenerationResult {
	if len(projects) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(projects) {
		concurrency = len(projects)
	}

	results := make([]GenerationResult, len(projects))
	var wg sync.WaitGroup
	jobs := make(chan int, len(projects))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						Root: projects[idx].Root,
						Err:  ctx.Err(),
					}
					continue
				}
				results[idx] = generateProject(ctx, svc, projects[idx], params)
			}
		}()
	}

	for i := range projects {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateProject processes a single project root and returns the result.
func generateProject(ctx context.Context, service Converter, p ProjectToConvert, params *generationParams) GenerationResult {
	start := time.Now()
	result := GenerationResult{
		Root:       p.Root,
		OutputPath: p.OutputPath,
	}

	if params.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.timeout)
		defer cancel()
	}

	res, err := service.Convert(ctx, code2pdf.Input{
		Root:           p.Root,
		Title:          params.title,
		Exclude:        params.exclude,
		Style:          params.style,
		LineNumbers:    params.lineNumbers,
		RenderMarkdown: params.renderMarkdown,
		CSS:            params.css,
		NoStyle:        params.noStyle,
		Page:           params.page,
		Footer:         params.footer,
		TOC:            params.toc,
		HTMLOnly:       params.htmlOnly,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.FileCount = len(res.Files)
	result.Skipped = res.Skipped

	outDir := filepath.Dir(p.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if params.html || params.htmlOnly {
		htmlPath := htmlOutputPath(p.OutputPath)
		// #nosec G306 -- generated documents are meant to be readable
		if err := os.WriteFile(htmlPath, []byte(res.HTML), filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	if !params.htmlOnly {
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(p.OutputPath, res.PDF, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, defaultOutputExt) + ".html"
}

// printResults outputs generation results using the environment writers.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Root, r.Err, hintFor(r.Err))
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d files, %v)\n", r.Root, r.OutputPath, r.FileCount, r.Duration.Round(time.Millisecond))
			for _, s := range r.Skipped {
				if s.Err != nil {
					fmt.Fprintf(env.Stdout, "  skipped %s (%s: %v)\n", s.RelPath, s.Reason, s.Err)
				} else {
					fmt.Fprintf(env.Stdout, "  skipped %s (%s)\n", s.RelPath, s.Reason)
				}
			}
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
