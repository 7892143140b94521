package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a user-supplied directory, falling
// back to the embedded assets for names the directory does not provide.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// basePath must exist and be a directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidAssetPath, basePath)
	}

	return &FilesystemLoader{
		basePath: basePath,
		fallback: NewEmbeddedLoader(),
	}, nil
}

// LoadStyle loads a CSS style from basePath/styles/<name>.css, falling
// back to the embedded style of the same name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base path is user-chosen
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading style %q: %w", name, err)
	}

	return f.fallback.LoadStyle(name)
}

// Styles lists the style names available from the directory and the
// embedded fallback, deduplicated.
func (f *FilesystemLoader) Styles() []string {
	seen := map[string]bool{}
	var names []string

	entries, err := os.ReadDir(filepath.Join(f.basePath, "styles"))
	if err == nil {
		for _, entry := range entries {
			if name, ok := strings.CutSuffix(entry.Name(), ".css"); ok && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	for _, name := range f.fallback.Styles() {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
