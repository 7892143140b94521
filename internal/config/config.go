// Package config loads and validates generator configuration from YAML or
// JSON files (JSON parses as YAML, so both formats go through one parser).
// Loaded files merge onto DefaultConfig, so omitted sections keep their
// default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-code2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Document and TOC titles
	MaxOutputNameLength  = 255  // Output file name
	MaxStyleNameLength   = 50   // Chroma or document style name
	MaxTextLength        = 500  // Footer free-form text
	MaxPathLength        = 4096 // Directory paths
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxExcludeEntries    = 500  // Exclusion list entries
	MaxExcludeNameLength = 255  // Single exclusion entry
)

// Config holds all configuration for document generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Document  DocumentConfig  `yaml:"document"`
	Scan      ScanConfig      `yaml:"scan"`
	Highlight HighlightConfig `yaml:"highlight"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	CSS       CSSConfig       `yaml:"css"`
	Assets    AssetsConfig    `yaml:"assets"`
	Page      PageConfig      `yaml:"page"`
	Footer    FooterConfig    `yaml:"footer"`
	TOC       TOCConfig       `yaml:"toc"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default project root (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Name string `yaml:"name"` // Output PDF file name (empty = <root>.pdf)
	Dir  string `yaml:"dir"`  // Output directory (empty = current directory)
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Document title (empty = root base name)
}

// ScanConfig defines traversal and filtering options.
type ScanConfig struct {
	ExcludeDirs   []string `yaml:"excludeDirs"`   // Directory base names to prune
	ExcludeFiles  []string `yaml:"excludeFiles"`  // File base names to skip
	IncludeHidden bool     `yaml:"includeHidden"` // Include dot-files and dot-dirs
	MaxFileSize   int64    `yaml:"maxFileSize"`   // Bytes, 0 = library default
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Style       string `yaml:"style"`       // Chroma style name (empty = library default)
	LineNumbers bool   `yaml:"lineNumbers"` // Render line numbers
}

// MarkdownConfig defines markdown handling options.
type MarkdownConfig struct {
	Render bool `yaml:"render"` // Render .md files instead of highlighting them
}

// CSSConfig defines document CSS options.
type CSSConfig struct {
	Style string `yaml:"style"` // Document stylesheet name or extra CSS file (empty = built-in)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.7)
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Text           string `yaml:"text"` // Optional free-form text
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"` // Heading above the entries (empty = none)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.name", c.Output.Name, MaxOutputNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
		}
	}

	if c.Scan.MaxFileSize < 0 {
		return fmt.Errorf("scan.maxFileSize: must be >= 0, got %d", c.Scan.MaxFileSize)
	}

	if err := validateExcludeList("scan.excludeDirs", c.Scan.ExcludeDirs); err != nil {
		return err
	}
	if err := validateExcludeList("scan.excludeFiles", c.Scan.ExcludeFiles); err != nil {
		return err
	}

	return nil
}

// validateExcludeList bounds an exclusion list and its entries.
// Entries are base names, so path separators are rejected.
func validateExcludeList(fieldName string, entries []string) error {
	if len(entries) > MaxExcludeEntries {
		return fmt.Errorf("%s: too many entries (%d, max %d)", fieldName, len(entries), MaxExcludeEntries)
	}
	for i, entry := range entries {
		if entry == "" {
			return fmt.Errorf("%s[%d]: entry cannot be empty", fieldName, i)
		}
		if len(entry) > MaxExcludeNameLength {
			return fmt.Errorf("%w: %s[%d] (%d chars, max %d)", ErrFieldTooLong, fieldName, i, len(entry), MaxExcludeNameLength)
		}
		if strings.ContainsAny(entry, "/\\") {
			return fmt.Errorf("%s[%d]: %q must be a base name, not a path", fieldName, i, entry)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: TOC on (the tool's whole
// point is a navigable document), everything else off or empty.
func DefaultConfig() *Config {
	return &Config{
		TOC: TOCConfig{Enabled: true, Title: "Table of Contents"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// The file is unmarshalled on top of DefaultConfig: sections the file
// omits keep their defaults (notably the enabled TOC).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml, .json
// Tries locations in order: current directory, ~/.config/go-code2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml", ".json"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (all extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (all extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-code2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
