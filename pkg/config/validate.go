package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks structural constraints plus the cross-reference rules the
// tag-based validator cannot express: unique model names, unique sibling
// field names, enum options, and model references resolving to declared
// object models.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	objectModels := make(map[string]bool)
	modelNames := make(map[string]bool)
	for _, model := range c.Models {
		if modelNames[model.Name] {
			return fmt.Errorf("duplicate model name %q", model.Name)
		}
		modelNames[model.Name] = true
		if model.Type == "object" {
			objectModels[model.Name] = true
		}
	}

	for _, model := range c.Models {
		if model.IsList && model.Items == nil {
			return fmt.Errorf("model %q: isList requires an items definition", model.Name)
		}
		if err := validateFields(model.Fields, objectModels); err != nil {
			return fmt.Errorf("model %q: %w", model.Name, err)
		}
		if model.Items != nil {
			if err := validateField(*model.Items, objectModels); err != nil {
				return fmt.Errorf("model %q: items: %w", model.Name, err)
			}
		}
	}
	return nil
}

func validateFields(fields []FieldDefinition, objectModels map[string]bool) error {
	names := make(map[string]bool, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			return fmt.Errorf("field of type %s is missing a name", field.Type)
		}
		if names[field.Name] {
			return fmt.Errorf("duplicate field name %q", field.Name)
		}
		names[field.Name] = true
		if err := validateField(field, objectModels); err != nil {
			return fmt.Errorf("field %q: %w", field.Name, err)
		}
	}
	return nil
}

func validateField(field FieldDefinition, objectModels map[string]bool) error {
	switch field.Type {
	case "enum":
		if len(field.Options) == 0 {
			return fmt.Errorf("enum field requires options")
		}
	case "object":
		return validateFields(field.Fields, objectModels)
	case "list":
		if field.Items != nil {
			return validateField(*field.Items, objectModels)
		}
	case "model":
		if len(field.Models) == 0 {
			return fmt.Errorf("model field requires model references")
		}
		for _, name := range field.Models {
			if !objectModels[name] {
				return fmt.Errorf("unknown object model %q", name)
			}
		}
	}
	return nil
}
