package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-siteschema/pkg/schema"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCanonicalForm(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
ssgName: hugo
pagesDir: content
dataDir: data
publishDir: public
models:
  - type: page
    name: post
    fields:
      - type: string
        name: title
      - type: date
        name: published_at
        label: Published
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hugo", cfg.SSGName)
	assert.Equal(t, "content", cfg.PagesDir)
	require.Len(t, cfg.Models, 1)

	post := cfg.Models[0]
	assert.Equal(t, "post", post.Name)
	assert.Equal(t, "Post", post.Label, "missing labels default from the name")
	require.Len(t, post.Fields, 2)
	assert.Equal(t, "Title", post.Fields[0].Label)
	assert.Equal(t, "Published", post.Fields[1].Label, "explicit labels are kept")
}

func TestLoadLegacyMapAndShorthand(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
models:
  post:
    type: page
    fields:
      - title
      - type: markdown
        name: body
  author:
    type: data
    fields:
      - name
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Models, 2)

	// Map keys decode in sorted order and supply missing names.
	assert.Equal(t, "author", cfg.Models[0].Name)
	assert.Equal(t, "post", cfg.Models[1].Name)

	title := cfg.Models[1].Fields[0]
	assert.Equal(t, "string", title.Type, "bare string fields are string typed")
	assert.Equal(t, "title", title.Name)
	assert.Equal(t, "Title", title.Label)
}

func TestLoadFoldsModelsTypeAlias(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
models:
  - type: object
    name: card
    fields:
      - type: string
        name: heading
  - type: data
    name: gallery
    isList: true
    items:
      type: models
      name: entry
      models: [card]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	gallery := cfg.Models[1]
	require.NotNil(t, gallery.Items)
	assert.Equal(t, "model", gallery.Items.Type)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("SITESCHEMA_PAGESDIR", "site/content")

	path := writeConfig(t, `
pagesDir: content
models: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "site/content", cfg.PagesDir)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "duplicate model names",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post"},
				{Type: "data", Name: "post"},
			}},
		},
		{
			name: "duplicate sibling field names",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post", Fields: []FieldDefinition{
					{Type: "string", Name: "title"},
					{Type: "text", Name: "title"},
				}},
			}},
		},
		{
			name: "unknown field type",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post", Fields: []FieldDefinition{
					{Type: "blob", Name: "x"},
				}},
			}},
		},
		{
			name: "enum without options",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post", Fields: []FieldDefinition{
					{Type: "enum", Name: "status"},
				}},
			}},
		},
		{
			name: "model reference to non-object model",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post", Fields: []FieldDefinition{
					{Type: "list", Name: "cards", Items: &FieldDefinition{
						Type: "model", Name: "item", Models: []string{"post"},
					}},
				}},
			}},
		},
		{
			name: "isList without items",
			cfg: Config{Models: []ModelDefinition{
				{Type: "data", Name: "authors", IsList: true},
			}},
		},
		{
			name: "unnamed field",
			cfg: Config{Models: []ModelDefinition{
				{Type: "page", Name: "post", Fields: []FieldDefinition{
					{Type: "string"},
				}},
			}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestValidateResolvesObjectModels(t *testing.T) {
	t.Parallel()

	cfg := Config{Models: []ModelDefinition{
		{Type: "object", Name: "card", Fields: []FieldDefinition{
			{Type: "string", Name: "heading"},
		}},
		{Type: "page", Name: "home", Fields: []FieldDefinition{
			{Type: "list", Name: "cards", Items: &FieldDefinition{
				Type: "model", Name: "item", Models: []string{"card"},
			}},
		}},
	}}
	assert.NoError(t, cfg.Validate())
}

func TestFromInferenceNormalizes(t *testing.T) {
	t.Parallel()

	cfg := FromInference([]schema.Model{
		{
			Type: schema.ModelTypePage,
			Name: "page_1",
			Fields: []schema.Field{
				{Type: schema.FieldTypeString, Name: "title"},
				{Type: schema.FieldTypeNumber, Name: "weight", Subtype: schema.NumberSubtypeInt},
			},
		},
	})

	require.Len(t, cfg.Models, 1)
	model := cfg.Models[0]
	assert.Equal(t, "page", model.Type)
	assert.Equal(t, "Page 1", model.Label)
	assert.Equal(t, "Title", model.Fields[0].Label)
	assert.Equal(t, "int", model.Fields[1].Subtype)
	assert.NoError(t, cfg.Validate())
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	original := FromInference([]schema.Model{
		{
			Type: schema.ModelTypeData,
			Name: "authors",
			Fields: []schema.Field{
				{Type: schema.FieldTypeString, Name: "name"},
			},
		},
	})
	original.SSGName = "jekyll"
	original.DataDir = "_data"

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, original.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.SSGName, loaded.SSGName)
	assert.Equal(t, original.DataDir, loaded.DataDir)
	require.Len(t, loaded.Models, 1)
	assert.Equal(t, original.Models[0].Name, loaded.Models[0].Name)
	assert.Equal(t, original.Models[0].Fields, loaded.Models[0].Fields)
}

func TestDefaultLabelOnlyFillsMissing(t *testing.T) {
	t.Parallel()

	cfg := Config{Models: []ModelDefinition{
		{Type: "page", Name: "post", Label: "Blog Post"},
	}}
	cfg.normalize()
	assert.Equal(t, "Blog Post", cfg.Models[0].Label)
}
