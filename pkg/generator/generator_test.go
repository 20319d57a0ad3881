package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-siteschema/internal/ssg"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
	"github.com/goliatone/go-siteschema/pkg/schema"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func generateFrom(t *testing.T, files map[string]string) *Result {
	t.Helper()
	root := writeTree(t, files)
	browser, err := filebrowser.NewLocal(root)
	require.NoError(t, err)
	match, err := ssg.Match(browser)
	require.NoError(t, err)

	result, err := New().Generate(context.Background(), Request{
		FileBrowser: browser,
		SSGMatch:    match,
	})
	require.NoError(t, err)
	return result
}

func modelByName(result *Result, name string) *schema.Model {
	for i := range result.Models {
		if result.Models[i].Name == name {
			return &result.Models[i]
		}
	}
	return nil
}

func TestGenerateCollapsesSimilarPages(t *testing.T) {
	t.Parallel()

	result := generateFrom(t, map[string]string{
		"config.toml":              "baseURL = \"https://example.com\"",
		"content/posts/first.md":   "---\ntitle: First\ndate: 2023-01-02\n---\n\nHello.\n",
		"content/posts/second.md":  "---\ntitle: Second\ndate: 2023-02-03\nsummary: short one\n---\n\nWorld.\n",
		"content/posts/third.md":   "---\ntitle: Third\ndate: 2023-03-04\n---\n\nAgain.\n",
		"content/README.md":        "# not content",
		"public/generated/page.md": "---\ntitle: built\n---\nout",
	})

	var pages []schema.Model
	for _, model := range result.Models {
		if model.Type == schema.ModelTypePage {
			pages = append(pages, model)
		}
	}
	require.Len(t, pages, 1, "three similar posts must collapse into one page model")

	page := pages[0]
	assert.Equal(t, "page_1", page.Name)
	assert.Equal(t, "Page 1", page.Label)

	names := map[string]schema.FieldType{}
	for _, field := range page.Fields {
		names[field.Name] = field.Type
	}
	assert.Equal(t, schema.FieldTypeString, names["title"])
	assert.Equal(t, schema.FieldTypeDate, names["date"])
	assert.Equal(t, schema.FieldTypeString, names["summary"])
	assert.Equal(t, schema.FieldTypeMarkdown, names["markdown_content"])
}

func TestGenerateKeepsDissimilarPagesApart(t *testing.T) {
	t.Parallel()

	result := generateFrom(t, map[string]string{
		"config.toml":           "baseURL = \"x\"",
		"content/post.md":       "---\ntitle: A post\ndate: 2023-01-02\nauthor: jo\n---\nbody\n",
		"content/landing.md":    "---\nheadline: Big\nhero: img/hero.png\ncta_link: /buy\n---\nbody\n",
	})

	var pages int
	for _, model := range result.Models {
		if model.Type == schema.ModelTypePage {
			pages++
		}
	}
	assert.Equal(t, 2, pages)
}

func TestGenerateDataModels(t *testing.T) {
	t.Parallel()

	result := generateFrom(t, map[string]string{
		"config.toml":       "baseURL = \"x\"",
		"data/site-info.yaml": "title: My Site\nfooter:\n  text: bye\n",
		"data/authors.yaml": "- name: Ann\n  bio: writes\n- name: Ben\n  bio: edits\n",
		"package.json":      `{"name": "site"}`,
	})

	info := modelByName(result, "site_info")
	require.NotNil(t, info, "object data file becomes a data model named after its stem")
	assert.Equal(t, schema.ModelTypeData, info.Type)
	assert.Equal(t, "Site Info", info.Label)
	assert.False(t, info.IsList)

	authors := modelByName(result, "authors")
	require.NotNil(t, authors)
	assert.True(t, authors.IsList)
	require.NotNil(t, authors.Items)
	assert.Equal(t, schema.FieldTypeObject, authors.Items.Type)

	assert.Nil(t, modelByName(result, "package"), "package.json is never content")
	assert.Nil(t, modelByName(result, "config"), "the generator config file is never content")
}

func TestGenerateExtractsObjectModels(t *testing.T) {
	t.Parallel()

	result := generateFrom(t, map[string]string{
		"config.toml":       "baseURL = \"x\"",
		"data/gallery.yaml": "items:\n- a: 1\n  b: x\n- a: 2\n  c: true\n",
	})

	gallery := modelByName(result, "gallery")
	require.NotNil(t, gallery)
	require.Len(t, gallery.Fields, 1)

	items := gallery.Fields[0]
	assert.Equal(t, schema.FieldTypeList, items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, schema.FieldTypeModel, items.Items.Type)
	assert.Equal(t, []string{"object_1", "object_2"}, items.Items.Models)

	first := modelByName(result, "object_1")
	require.NotNil(t, first)
	assert.Equal(t, schema.ModelTypeObject, first.Type)
	assert.Equal(t, "Object 1", first.Label)
	assert.Equal(t, "a", first.Fields[0].Name)
	assert.Equal(t, "b", first.Fields[1].Name)

	second := modelByName(result, "object_2")
	require.NotNil(t, second)
	assert.Equal(t, "c", second.Fields[1].Name)
}

func TestGenerateSkipsBrokenAndEmptyFiles(t *testing.T) {
	t.Parallel()

	result := generateFrom(t, map[string]string{
		"config.toml":      "baseURL = \"x\"",
		"content/ok.md":    "---\ntitle: Fine\n---\nbody\n",
		"data/broken.json": `{"oops": `,
		"data/nulls.yaml":  "tag: null\n",
	})

	var pages, datas int
	for _, model := range result.Models {
		switch model.Type {
		case schema.ModelTypePage:
			pages++
		case schema.ModelTypeData:
			datas++
		}
	}
	assert.Equal(t, 1, pages)
	assert.Equal(t, 0, datas, "broken and all-null files contribute nothing")
}

func TestDataModelName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"data/site-config.json": "site_config",
		"data/Authors.yaml":     "authors",
		"nav menu.yml":          "nav_menu",
		"a/b/c/team.toml":       "team",
	}
	for in, want := range tests {
		assert.Equal(t, want, dataModelName(in), "path %q", in)
	}
}

func TestGenerateRequiresFileBrowser(t *testing.T) {
	t.Parallel()

	_, err := New().Generate(context.Background(), Request{})
	assert.Error(t, err)
}
