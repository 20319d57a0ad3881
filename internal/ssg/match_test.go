package ssg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-siteschema/pkg/filebrowser"
)

func browserFor(t *testing.T, files map[string]string) filebrowser.FileBrowser {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	browser, err := filebrowser.NewLocal(root)
	require.NoError(t, err)
	return browser
}

func TestMatchJekyll(t *testing.T) {
	t.Parallel()

	browser := browserFor(t, map[string]string{
		"_config.yml":    "title: blog",
		"index.md":       "# hi",
		"_data/nav.yaml": "items: []",
	})

	match, err := Match(browser)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "jekyll", match.Name)
	assert.Equal(t, "", match.PagesDir)
	assert.Equal(t, "_data", match.DataDir)
	assert.Equal(t, "_site", match.PublishDir)
}

func TestMatchHugo(t *testing.T) {
	t.Parallel()

	browser := browserFor(t, map[string]string{
		"config.toml":      "baseURL = \"https://example.com\"",
		"content/about.md": "# about",
	})

	match, err := Match(browser)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "hugo", match.Name)
	assert.Equal(t, "content", match.PagesDir)
}

func TestMatchGatsbyFromPackageJSON(t *testing.T) {
	t.Parallel()

	browser := browserFor(t, map[string]string{
		"package.json": `{"dependencies": {"gatsby": "^5.0.0", "react": "^18.0.0"}}`,
	})

	match, err := Match(browser)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "gatsby", match.Name)
	assert.Equal(t, "src/pages", match.PagesDir)
	assert.Equal(t, "public", match.PublishDir)
}

func TestMatchDependencyBeatsConfigFile(t *testing.T) {
	t.Parallel()

	// A repo can carry a stray config file; the declared dependency wins.
	browser := browserFor(t, map[string]string{
		"package.json": `{"devDependencies": {"hexo": "^6.0.0"}}`,
		"_config.yml":  "title: hexo site",
	})

	match, err := Match(browser)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "hexo", match.Name)
}

func TestMatchNothing(t *testing.T) {
	t.Parallel()

	browser := browserFor(t, map[string]string{
		"notes.md": "# notes",
	})

	match, err := Match(browser)
	require.NoError(t, err)
	assert.Nil(t, match)
}
