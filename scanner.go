package code2pdf

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Skip reason constants reported in SkippedFile.Reason.
const (
	SkipReasonExcluded = "excluded"
	SkipReasonBinary   = "binary"
	SkipReasonTooLarge = "too large"
	SkipReasonReadErr  = "read error"
)

// binarySniffLen is how many leading bytes are inspected for the
// text-vs-binary decision.
const binarySniffLen = 1024

// SourceFile is a text file discovered under the project root.
type SourceFile struct {
	RelPath string // slash-separated path relative to the root
	AbsPath string
	Content string
}

// SkippedFile records a file that the scan left out and why.
type SkippedFile struct {
	RelPath string
	Reason  string
	Err     error // set only for read errors
}

// projectScanner abstracts directory traversal to allow fakes in tests.
type projectScanner interface {
	Scan(ctx context.Context, root string, rules *ExcludeRules) ([]SourceFile, []SkippedFile, error)
}

// fsScanner walks the real filesystem.
type fsScanner struct{}

// Compile-time interface check.
var _ projectScanner = (*fsScanner)(nil)

// Scan walks root and returns every text file that survives the exclusion
// rules, in lexical walk order. Files that cannot be read are reported as
// skipped instead of failing the scan; only traversal errors abort it.
func (s *fsScanner) Scan(ctx context.Context, root string, rules *ExcludeRules) ([]SourceFile, []SkippedFile, error) {
	if rules == nil {
		rules = DefaultExcludeRules()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	var files []SourceFile
	var skipped []SkippedFile

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// The root itself is never excluded, even if its base name matches.
		if path == root {
			return nil
		}

		name := d.Name()
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if excludedDir(name, rules) {
				return fs.SkipDir
			}
			return nil
		}

		if excludedFile(name, rules) {
			skipped = append(skipped, SkippedFile{RelPath: rel, Reason: SkipReasonExcluded})
			return nil
		}

		fi, statErr := d.Info()
		if statErr != nil {
			skipped = append(skipped, SkippedFile{RelPath: rel, Reason: SkipReasonReadErr, Err: statErr})
			return nil
		}
		if fi.Size() > rules.maxFileSize() {
			skipped = append(skipped, SkippedFile{RelPath: rel, Reason: SkipReasonTooLarge})
			return nil
		}

		content, readErr := os.ReadFile(path) // #nosec G304 -- path comes from the walked root
		if readErr != nil {
			skipped = append(skipped, SkippedFile{RelPath: rel, Reason: SkipReasonReadErr, Err: readErr})
			return nil
		}

		if looksBinary(content) {
			skipped = append(skipped, SkippedFile{RelPath: rel, Reason: SkipReasonBinary})
			return nil
		}

		files = append(files, SourceFile{
			RelPath: rel,
			AbsPath: path,
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}

	return files, skipped, nil
}

// excludedDir reports whether a directory should be pruned from the walk.
func excludedDir(name string, rules *ExcludeRules) bool {
	if isHidden(name) && !rules.IncludeHidden {
		return true
	}
	return containsName(rules.Dirs, name)
}

// excludedFile reports whether a file should be skipped by name.
func excludedFile(name string, rules *ExcludeRules) bool {
	if isHidden(name) && !rules.IncludeHidden {
		return true
	}
	return containsName(rules.Files, name)
}

// isHidden reports whether a base name is a dot-entry.
// "." and ".." never reach the walk callback, so a leading dot is enough.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// containsName checks a rule list for an exact base-name match.
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// looksBinary reports whether content appears to be a binary file.
// The leading bytes must be valid UTF-8 and free of NUL. A multi-byte
// rune truncated by the sniff window is tolerated.
func looksBinary(content []byte) bool {
	sniff := content
	truncated := false
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
		truncated = true
	}

	if bytes.IndexByte(sniff, 0) != -1 {
		return true
	}

	if truncated {
		// Drop up to 3 trailing bytes that may be a rune cut mid-sequence.
		for i := 0; i < 3 && len(sniff) > 0; i++ {
			if utf8.Valid(sniff) {
				return false
			}
			sniff = sniff[:len(sniff)-1]
		}
	}

	return !utf8.Valid(sniff)
}
