// Package assets provides document stylesheets, embedded by default and
// overridable from a user-supplied directory.
package assets
