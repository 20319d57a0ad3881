// Package ssg detects which static-site generator a repository was built
// with, by sniffing package.json dependencies and well-known config files.
// The match result scopes the directories the schema generator scans.
package ssg

import (
	"github.com/goliatone/go-siteschema/pkg/content"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
)

// MatchResult describes the detected generator and its conventional
// directories. Empty directory values mean the repository root.
type MatchResult struct {
	Name       string
	SSGDir     string
	PagesDir   string
	DataDir    string
	PublishDir string
}

// ConfigFileNames lists generator config files that must never be mistaken
// for content. The schema generator excludes them from data scans.
var ConfigFileNames = []string{
	"_config.yml",
	"config.toml",
	"config.yaml",
	"config.yml",
	"hugo.toml",
	"hugo.yaml",
	"gatsby-config.js",
	"next.config.js",
	"nuxt.config.js",
	"netlify.toml",
	".eleventy.js",
	"eleventy.config.js",
}

type dependencyMatcher struct {
	dependency string
	result     MatchResult
}

// Dependency sniffing runs before config-file sniffing; a package.json entry
// is a stronger signal than a config file name shared by several tools.
var dependencyMatchers = []dependencyMatcher{
	{"gatsby", MatchResult{Name: "gatsby", PagesDir: "src/pages", DataDir: "src/data", PublishDir: "public"}},
	{"next", MatchResult{Name: "nextjs", PagesDir: "pages", DataDir: "data", PublishDir: ".next"}},
	{"nuxt", MatchResult{Name: "nuxt", PagesDir: "pages", DataDir: "data", PublishDir: "dist"}},
	{"hexo", MatchResult{Name: "hexo", PagesDir: "source", DataDir: "source/_data", PublishDir: "public"}},
	{"@11ty/eleventy", MatchResult{Name: "eleventy", PagesDir: "", DataDir: "_data", PublishDir: "_site"}},
}

// Match inspects the repository and returns the first generator whose
// signature is present, or nil when nothing matches.
func Match(browser filebrowser.FileBrowser) (*MatchResult, error) {
	if err := browser.ListFiles(); err != nil {
		return nil, err
	}

	if result := matchPackageJSON(browser); result != nil {
		return result, nil
	}
	return matchConfigFiles(browser), nil
}

func matchPackageJSON(browser filebrowser.FileBrowser) *MatchResult {
	if !browser.FileExists("package.json") {
		return nil
	}
	value, ok, err := browser.GetFileData("package.json")
	if !ok || err != nil || value.Kind() != content.KindObject {
		return nil
	}

	dependencies := make(map[string]bool)
	for _, member := range value.Members() {
		if member.Key != "dependencies" && member.Key != "devDependencies" {
			continue
		}
		for _, dep := range member.Value.Members() {
			dependencies[dep.Key] = true
		}
	}

	for _, matcher := range dependencyMatchers {
		if dependencies[matcher.dependency] {
			result := matcher.result
			return &result
		}
	}
	return nil
}

func matchConfigFiles(browser filebrowser.FileBrowser) *MatchResult {
	if browser.FileExists("_config.yml") {
		return &MatchResult{Name: "jekyll", PagesDir: "", DataDir: "_data", PublishDir: "_site"}
	}

	hugoConfigs := []string{"hugo.toml", "hugo.yaml", "config.toml", "config.yaml"}
	for _, name := range hugoConfigs {
		if browser.FileExists(name) {
			return &MatchResult{Name: "hugo", PagesDir: "content", DataDir: "data", PublishDir: "public"}
		}
	}
	return nil
}
