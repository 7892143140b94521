package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: code2pdf [flags] <project-dir> [<project-dir>...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a project directory into a single PDF with syntax-highlighted")
	fmt.Fprintln(w, "source files and a clickable table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  project-dir    Project root(s) to document (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output PDF file or directory")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path (.yaml, .yml, .json)")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>          PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --title <s>            Document title (\"\" = project directory name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scanning:")
	fmt.Fprintln(w, "      --exclude-dir <name>   Directory name to skip (repeatable)")
	fmt.Fprintln(w, "      --exclude-file <name>  File name to skip (repeatable)")
	fmt.Fprintln(w, "      --include-hidden       Include dot-files and dot-directories")
	fmt.Fprintln(w, "      --max-file-size <n>    Max file size in bytes (0 = default 1MB)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "  -s, --style <name>         Chroma highlight style (default: github)")
	fmt.Fprintln(w, "      --line-numbers         Render line numbers in code blocks")
	fmt.Fprintln(w, "      --render-markdown      Render .md files instead of highlighting them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --css <name|path>      Document stylesheet name or CSS file path")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory")
	fmt.Fprintln(w, "      --no-style             Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>        Page size: letter, a4, legal (default: a4)")
	fmt.Fprintln(w, "      --orientation <s>      Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>           Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s>  Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>      Custom footer text")
	fmt.Fprintln(w, "      --footer-page-number   Show page numbers")
	fmt.Fprintln(w, "      --no-footer            Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc-title <s>        Heading above the entries")
	fmt.Fprintln(w, "      --no-toc               Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Debugging:")
	fmt.Fprintln(w, "      --html                 Output HTML alongside PDF")
	fmt.Fprintln(w, "      --html-only            Output HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show timing and skipped files")
	fmt.Fprintln(w, "      --version              Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN            Path to a Chrome/Chromium binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX             Set to 1 in Docker/CI environments")
}
