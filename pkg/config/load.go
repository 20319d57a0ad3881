package config

import (
	"fmt"
	"sort"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SITESCHEMA_"

// Load reads the configuration file, layers SITESCHEMA_* environment
// overrides on top, normalizes legacy syntaxes, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: environment overrides: %w", err)
	}

	cfg := &Config{
		SSGName:    k.String("ssgName"),
		PagesDir:   k.String("pagesDir"),
		DataDir:    k.String("dataDir"),
		PublishDir: k.String("publishDir"),
	}

	models, err := decodeModels(k.Get("models"))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Models = models

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// envKeys maps lowercased environment names back to the camelCase koanf keys.
var envKeys = map[string]string{
	"ssgname":    "ssgName",
	"pagesdir":   "pagesDir",
	"datadir":    "dataDir",
	"publishdir": "publishDir",
}

func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if canonical, ok := envKeys[key]; ok {
		return canonical
	}
	return strings.ReplaceAll(key, "__", ".")
}

// decodeModels accepts both the canonical list form and the legacy map form
// where models are keyed by name.
func decodeModels(raw any) ([]ModelDefinition, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		models := make([]ModelDefinition, 0, len(value))
		for i, entry := range value {
			model, err := decodeModel(entry)
			if err != nil {
				return nil, fmt.Errorf("models[%d]: %w", i, err)
			}
			models = append(models, model)
		}
		return models, nil
	case map[string]any:
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		sort.Strings(names)

		models := make([]ModelDefinition, 0, len(names))
		for _, name := range names {
			model, err := decodeModel(value[name])
			if err != nil {
				return nil, fmt.Errorf("models.%s: %w", name, err)
			}
			if model.Name == "" {
				model.Name = name
			}
			models = append(models, model)
		}
		return models, nil
	default:
		return nil, fmt.Errorf("models must be a list or a map, got %T", raw)
	}
}

func decodeModel(raw any) (ModelDefinition, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return ModelDefinition{}, fmt.Errorf("model entry must be a map, got %T", raw)
	}

	model := ModelDefinition{
		Type:   stringAt(entry, "type"),
		Name:   stringAt(entry, "name"),
		Label:  stringAt(entry, "label"),
		IsList: boolAt(entry, "isList"),
	}

	fields, err := decodeFields(entry["fields"])
	if err != nil {
		return ModelDefinition{}, err
	}
	model.Fields = fields

	if rawItems, ok := entry["items"]; ok {
		items, err := decodeField(rawItems)
		if err != nil {
			return ModelDefinition{}, fmt.Errorf("items: %w", err)
		}
		model.Items = &items
	}
	return model, nil
}

func decodeFields(raw any) ([]FieldDefinition, error) {
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("fields must be a list, got %T", raw)
	}
	fields := make([]FieldDefinition, 0, len(entries))
	for i, entry := range entries {
		field, err := decodeField(entry)
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func decodeField(raw any) (FieldDefinition, error) {
	switch value := raw.(type) {
	case string:
		// Legacy shorthand: a bare name declares a string field.
		return FieldDefinition{Type: "string", Name: value}, nil
	case map[string]any:
		field := FieldDefinition{
			Type:    stringAt(value, "type"),
			Name:    stringAt(value, "name"),
			Label:   stringAt(value, "label"),
			Subtype: stringAt(value, "subtype"),
			Models:  stringsAt(value, "models"),
			Options: stringsAt(value, "options"),
		}
		nested, err := decodeFields(value["fields"])
		if err != nil {
			return FieldDefinition{}, err
		}
		field.Fields = nested

		if rawItems, ok := value["items"]; ok {
			items, err := decodeField(rawItems)
			if err != nil {
				return FieldDefinition{}, fmt.Errorf("items: %w", err)
			}
			field.Items = &items
		}
		return field, nil
	default:
		return FieldDefinition{}, fmt.Errorf("field entry must be a map or string, got %T", raw)
	}
}

func stringAt(entry map[string]any, key string) string {
	if value, ok := entry[key].(string); ok {
		return value
	}
	return ""
}

func boolAt(entry map[string]any, key string) bool {
	if value, ok := entry[key].(bool); ok {
		return value
	}
	return false
}

func stringsAt(entry map[string]any, key string) []string {
	raw, ok := entry[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
