package assets

// DefaultStyleName is the base document stylesheet injected into every
// generated document unless styling is disabled.
const DefaultStyleName = "document"

// AssetLoader resolves named document stylesheets.
type AssetLoader interface {
	// LoadStyle returns the CSS content for a style name (no extension).
	LoadStyle(name string) (string, error)
	// Styles lists the available style names, for error hints.
	Styles() []string
}

// defaultLoader serves package-level lookups against the embedded assets.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS style from the embedded assets by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
