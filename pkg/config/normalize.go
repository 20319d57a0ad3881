package config

import "github.com/goliatone/go-siteschema/pkg/schema"

// normalize canonicalizes a decoded config in place: missing labels are
// defaulted from names and legacy aliases are folded into their canonical
// spelling.
func (c *Config) normalize() {
	for i := range c.Models {
		model := &c.Models[i]
		if model.Label == "" {
			model.Label = schema.DefaultLabel(model.Name)
		}
		normalizeFields(model.Fields)
		if model.Items != nil {
			normalizeField(model.Items)
		}
	}
}

func normalizeFields(fields []FieldDefinition) {
	for i := range fields {
		normalizeField(&fields[i])
	}
}

func normalizeField(field *FieldDefinition) {
	// Older configs spelled model-typed items as "models"; fold the alias.
	if field.Type == "models" {
		field.Type = "model"
	}
	if field.Label == "" && field.Name != "" {
		field.Label = schema.DefaultLabel(field.Name)
	}
	normalizeFields(field.Fields)
	if field.Items != nil {
		normalizeField(field.Items)
	}
}
