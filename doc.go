// Package code2pdf renders a project directory into a single PDF with
// syntax-highlighted source files and a clickable table of contents,
// using headless Chrome for the final rendering step.
//
// # Quick Start
//
// Create a service, convert a directory, and close when done:
//
//	svc := code2pdf.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, code2pdf.Input{
//	    Root: "/path/to/project",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("project.pdf", result.PDF, 0644)
//
// The result contains the PDF bytes (result.PDF), the intermediate HTML
// (result.HTML) for debugging, the relative paths of the files that were
// included, and the files that were skipped with the reason. Use
// Input.HTMLOnly to skip PDF generation entirely.
//
// # Pipeline
//
// The conversion runs in these stages:
//
//  1. Directory scan with exclusion rules and binary detection
//  2. Syntax highlighting per file via chroma
//  3. Optional markdown rendering via Goldmark for .md files
//  4. HTML document assembly (TOC, file sections, CSS injection)
//  5. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := code2pdf.New(
//	    code2pdf.WithTimeout(2 * time.Minute),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := svc.Convert(ctx, code2pdf.Input{
//	    Root:    "/path/to/project",
//	    Title:   "My Project",
//	    Exclude: &code2pdf.ExcludeRules{Dirs: []string{".git", "vendor"}},
//	    Style:   "github",
//	    Page:    &code2pdf.PageSettings{Size: "a4"},
//	    Footer:  &code2pdf.Footer{ShowPageNumber: true},
//	    TOC:     &code2pdf.TOC{Title: "Table of Contents"},
//	})
//
// # Parallel Processing
//
// For batch conversion of several project roots, use ServicePool to manage
// multiple browser instances:
//
//	pool := code2pdf.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package code2pdf
