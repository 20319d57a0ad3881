package filebrowser

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-siteschema/pkg/content"
)

const defaultCacheSize = 512

// skipDirs are never descended into while indexing.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

var yamlFrontmatterFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Local browses a directory tree on the local filesystem.
type Local struct {
	root    string
	indexed bool
	files   []string
	fileSet map[string]bool
	byName  map[string][]string
	cache   *lru.Cache[string, cachedDocument]
}

type cachedDocument struct {
	value content.Value
	err   error
}

// LocalOption customises a Local browser.
type LocalOption func(*Local)

// WithCacheSize overrides the parsed-document cache capacity.
func WithCacheSize(size int) LocalOption {
	return func(l *Local) {
		if cache, err := lru.New[string, cachedDocument](size); err == nil {
			l.cache = cache
		}
	}
}

// NewLocal constructs a browser rooted at dir.
func NewLocal(root string, options ...LocalOption) (*Local, error) {
	cache, err := lru.New[string, cachedDocument](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("filebrowser: cache: %w", err)
	}
	local := &Local{
		root:    filepath.Clean(root),
		fileSet: make(map[string]bool),
		byName:  make(map[string][]string),
		cache:   cache,
	}
	for _, option := range options {
		if option != nil {
			option(local)
		}
	}
	return local, nil
}

// ListFiles indexes the tree once, skipping VCS and dependency directories
// and anything hidden.
func (l *Local) ListFiles() error {
	if l.indexed {
		return nil
	}

	err := filepath.WalkDir(l.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if path == l.root {
				return nil
			}
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		l.files = append(l.files, rel)
		l.fileSet[rel] = true
		l.byName[name] = append(l.byName[name], rel)
		return nil
	})
	if err != nil {
		return fmt.Errorf("filebrowser: index %s: %w", l.root, err)
	}

	sort.Strings(l.files)
	l.indexed = true
	return nil
}

// ReadFilesRecursively returns the indexed paths under dir passing the
// filter. An empty dir scopes to the whole tree.
func (l *Local) ReadFilesRecursively(dir string, filter Filter) ([]string, error) {
	if err := l.ListFiles(); err != nil {
		return nil, err
	}

	prefix := strings.Trim(filepath.ToSlash(dir), "/")
	if prefix != "" {
		prefix += "/"
	}

	var matches []string
	for _, path := range l.files {
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		if !filter.Match(path) {
			continue
		}
		matches = append(matches, path)
	}
	return matches, nil
}

// GetFileData parses a known file according to its extension and caches the
// result for the rest of the run.
func (l *Local) GetFileData(path string) (content.Value, bool, error) {
	if err := l.ListFiles(); err != nil {
		return content.Null(), false, err
	}
	path = filepath.ToSlash(path)
	if !l.fileSet[path] {
		return content.Null(), false, nil
	}

	if cached, ok := l.cache.Get(path); ok {
		return cached.value, true, cached.err
	}

	value, err := l.parseFile(path)
	l.cache.Add(path, cachedDocument{value: value, err: err})
	return value, true, err
}

// FileExists reports whether the path is indexed.
func (l *Local) FileExists(path string) bool {
	if err := l.ListFiles(); err != nil {
		return false
	}
	return l.fileSet[filepath.ToSlash(path)]
}

// FilePathsForFileName returns every indexed path with the given base name.
func (l *Local) FilePathsForFileName(name string) []string {
	if err := l.ListFiles(); err != nil {
		return nil
	}
	return append([]string(nil), l.byName[name]...)
}

func (l *Local) parseFile(path string) (content.Value, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(path)))
	if err != nil {
		return content.Null(), fmt.Errorf("filebrowser: read %s: %w", path, err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "md", "mdx", "markdown":
		return parseMarkdown(path, data)
	case "yml", "yaml", "json":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return content.Null(), fmt.Errorf("filebrowser: parse %s: %w", path, err)
		}
		value, err := content.FromYAMLNode(&node)
		if err != nil {
			return content.Null(), fmt.Errorf("filebrowser: parse %s: %w", path, err)
		}
		return value, nil
	case "toml":
		var decoded map[string]any
		if err := toml.Unmarshal(data, &decoded); err != nil {
			return content.Null(), fmt.Errorf("filebrowser: parse %s: %w", path, err)
		}
		return content.FromGo(decoded), nil
	default:
		return content.StringValue(string(data)), nil
	}
}

// parseMarkdown splits the document into its front matter and body, returning
// the {frontmatter, markdown} shape the generator flattens.
func parseMarkdown(path string, data []byte) (content.Value, error) {
	var node yaml.Node
	body, err := frontmatter.Parse(bytes.NewReader(data), &node, yamlFrontmatterFormat)
	if err != nil {
		return content.Null(), fmt.Errorf("filebrowser: front matter %s: %w", path, err)
	}

	matter, err := content.FromYAMLNode(&node)
	if err != nil {
		return content.Null(), fmt.Errorf("filebrowser: front matter %s: %w", path, err)
	}

	return content.ObjectValue(
		content.Member{Key: "frontmatter", Value: matter},
		content.Member{Key: "markdown", Value: content.StringValue(string(body))},
	), nil
}
