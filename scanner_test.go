package code2pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTree creates a file tree under root. Keys are slash-separated
// relative paths; values are file contents.
func writeTree(t *testing.T, root string, files map[string][]byte) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func relPaths(files []SourceFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestScan_CollectsTextFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go":          []byte("package main\n"),
		"README.md":        []byte("# readme\n"),
		"internal/util.go": []byte("package internal\n"),
	})

	s := &fsScanner{}
	files, skipped, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	got := relPaths(files)
	want := []string{"README.md", "internal/util.go", "main.go"}
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q (lexical walk order)", i, got[i], want[i])
		}
	}

	for _, f := range files {
		if f.Content == "" {
			t.Errorf("%s: content not loaded", f.RelPath)
		}
		if !filepath.IsAbs(f.AbsPath) {
			t.Errorf("%s: AbsPath %q not absolute", f.RelPath, f.AbsPath)
		}
	}
}

func TestScan_PrunesExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go":                  []byte("package main\n"),
		"node_modules/pkg/deep.js": []byte("deep"),
		"vendor/lib.go":            []byte("vendored"),
	})

	s := &fsScanner{}
	files, skipped, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if got := relPaths(files); len(got) != 1 || got[0] != "main.go" {
		t.Errorf("files = %v, want [main.go]", got)
	}
	// Pruned directories produce no skip records; their contents are invisible.
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
}

func TestScan_SkipsExcludedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go": []byte("package main\n"),
		"go.sum":  []byte("checksums"),
	})

	s := &fsScanner{}
	files, skipped, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if got := relPaths(files); len(got) != 1 || got[0] != "main.go" {
		t.Errorf("files = %v, want [main.go]", got)
	}
	if len(skipped) != 1 || skipped[0].RelPath != "go.sum" || skipped[0].Reason != SkipReasonExcluded {
		t.Errorf("skipped = %v, want go.sum excluded", skipped)
	}
}

func TestScan_HiddenEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go":             []byte("package main\n"),
		".env":                []byte("SECRET=1"),
		".github/workflow.yml": []byte("on: push"),
	})

	s := &fsScanner{}

	// Hidden entries skipped by default
	files, _, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "main.go" {
		t.Errorf("files = %v, want [main.go]", got)
	}

	// IncludeHidden brings them back
	rules := DefaultExcludeRules()
	rules.IncludeHidden = true
	files, _, err = s.Scan(context.Background(), root, rules)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	got := relPaths(files)
	if len(got) != 3 {
		t.Errorf("files = %v, want 3 entries with IncludeHidden", got)
	}
}

func TestScan_RootNeverExcluded(t *testing.T) {
	t.Parallel()

	// A hidden root directory must still be scanned.
	parent := t.TempDir()
	root := filepath.Join(parent, ".myproject")
	writeTree(t, root, map[string][]byte{
		"main.go": []byte("package main\n"),
	})

	s := &fsScanner{}
	files, _, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want 1 entry", relPaths(files))
	}
}

func TestScan_SkipsBinaryFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go":   []byte("package main\n"),
		"image.png": {0x89, 0x50, 0x4E, 0x47, 0x00, 0x01, 0x02},
	})

	s := &fsScanner{}
	files, skipped, err := s.Scan(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "main.go" {
		t.Errorf("files = %v, want [main.go]", got)
	}
	if len(skipped) != 1 || skipped[0].Reason != SkipReasonBinary {
		t.Errorf("skipped = %v, want image.png binary", skipped)
	}
}

func TestScan_SkipsOversizedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"small.txt": []byte("small"),
		"big.txt":   []byte(strings.Repeat("x", 100)),
	})

	rules := &ExcludeRules{MaxFileSize: 50}
	s := &fsScanner{}
	files, skipped, err := s.Scan(context.Background(), root, rules)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "small.txt" {
		t.Errorf("files = %v, want [small.txt]", got)
	}
	if len(skipped) != 1 || skipped[0].Reason != SkipReasonTooLarge {
		t.Errorf("skipped = %v, want big.txt too large", skipped)
	}
}

func TestScan_RootErrors(t *testing.T) {
	t.Parallel()

	s := &fsScanner{}

	_, _, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, ErrScanFailed) {
		t.Errorf("missing root error = %v, want ErrScanFailed", err)
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err = s.Scan(context.Background(), file, nil)
	if !errors.Is(err, ErrRootNotDir) {
		t.Errorf("file root error = %v, want ErrRootNotDir", err)
	}
}

func TestScan_ContextCancellation(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string][]byte{"main.go": []byte("package main\n")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &fsScanner{}
	_, _, err := s.Scan(ctx, root, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLooksBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, false},
		{"ascii", []byte("hello world"), false},
		{"utf8 multibyte", []byte("héllo wörld 世界"), false},
		{"nul byte", []byte{'a', 0, 'b'}, true},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}, true},
		{
			"rune truncated at sniff boundary",
			append([]byte(strings.Repeat("a", binarySniffLen-1)), []byte("世界")...),
			false,
		},
		{
			"nul past sniff window ignored",
			append([]byte(strings.Repeat("a", binarySniffLen)), 0),
			false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := looksBinary(tt.content); got != tt.want {
				t.Errorf("looksBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExcludedDirAndFile(t *testing.T) {
	t.Parallel()

	rules := DefaultExcludeRules()

	if !excludedDir(".git", rules) {
		t.Error(".git should be excluded")
	}
	if !excludedDir("node_modules", rules) {
		t.Error("node_modules should be excluded")
	}
	if excludedDir("src", rules) {
		t.Error("src should not be excluded")
	}
	if !excludedFile(".DS_Store", rules) {
		t.Error(".DS_Store should be excluded")
	}
	if excludedFile("main.go", rules) {
		t.Error("main.go should not be excluded")
	}

	hidden := &ExcludeRules{IncludeHidden: true}
	if excludedDir(".github", hidden) {
		t.Error(".github should be kept with IncludeHidden")
	}
}
