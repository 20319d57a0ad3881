// Package filebrowser abstracts repository file access for the schema
// generator. Implementations index the file tree once, answer filtered
// recursive listings, and hand back parsed document values with a per-run
// cache so repeated reads of the same path stay cheap.
package filebrowser

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/goliatone/go-siteschema/pkg/content"
)

// MarkdownExtensions lists the file extensions classified as page documents.
var MarkdownExtensions = []string{"md", "mdx", "markdown"}

// DataExtensions lists the file extensions classified as data documents.
var DataExtensions = []string{"yml", "yaml", "json", "toml"}

// Filter narrows a recursive listing to candidate content files.
type Filter struct {
	// Extensions is the allow-list of file extensions, without the dot.
	Extensions []string
	// Excludes holds doublestar glob patterns matched against the path
	// relative to the browser root.
	Excludes []string
}

// Match reports whether a root-relative path passes the filter.
func (f Filter) Match(path string) bool {
	if len(f.Extensions) > 0 {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		allowed := false
		for _, candidate := range f.Extensions {
			if ext == candidate {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	for _, pattern := range f.Excludes {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return false
		}
	}
	return true
}

// FileBrowser is the capability the schema generator consumes. Paths are
// relative to the browsed root and use forward slashes.
type FileBrowser interface {
	// ListFiles populates the internal file index. Calling it more than once
	// is a no-op.
	ListFiles() error

	// ReadFilesRecursively walks the indexed tree under dir and returns the
	// paths passing the filter, in lexical order.
	ReadFilesRecursively(dir string, filter Filter) ([]string, error)

	// GetFileData returns the parsed document for a known path. The boolean
	// is false for paths outside the indexed set. A parse failure returns a
	// non-nil error with the boolean still true; callers treat the file as
	// contributing nothing.
	GetFileData(path string) (content.Value, bool, error)

	// FileExists reports whether the path is part of the indexed set.
	FileExists(path string) bool

	// FilePathsForFileName returns every indexed path whose base name equals
	// name.
	FilePathsForFileName(name string) []string
}
