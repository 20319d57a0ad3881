// Package config loads, normalizes, and validates the declarative model
// configuration (siteschema.yaml). Legacy syntaxes are canonicalized before
// validation so downstream consumers see one shape, and models produced by
// the inference engine run through exactly the same pipeline as user-authored
// ones.
package config

import (
	"github.com/goliatone/go-siteschema/pkg/schema"
)

// DefaultFileName is the conventional config file name at a repository root.
const DefaultFileName = "siteschema.yaml"

// Config is the canonical configuration shape.
type Config struct {
	SSGName    string            `koanf:"ssgName" yaml:"ssgName,omitempty"`
	PagesDir   string            `koanf:"pagesDir" yaml:"pagesDir,omitempty"`
	DataDir    string            `koanf:"dataDir" yaml:"dataDir,omitempty"`
	PublishDir string            `koanf:"publishDir" yaml:"publishDir,omitempty"`
	Models     []ModelDefinition `koanf:"models" yaml:"models" validate:"dive"`
}

// ModelDefinition declares one page, data, or object model.
type ModelDefinition struct {
	Type   string            `koanf:"type" yaml:"type" validate:"required,oneof=page data object"`
	Name   string            `koanf:"name" yaml:"name" validate:"required"`
	Label  string            `koanf:"label" yaml:"label,omitempty"`
	IsList bool              `koanf:"isList" yaml:"isList,omitempty"`
	Fields []FieldDefinition `koanf:"fields" yaml:"fields,omitempty" validate:"dive"`
	Items  *FieldDefinition  `koanf:"items" yaml:"items,omitempty"`
}

// FieldDefinition declares one field of a model. Options applies to enum
// fields, Models to model-typed items definitions.
type FieldDefinition struct {
	Type    string            `koanf:"type" yaml:"type" validate:"required,oneof=string text markdown color image date datetime number boolean object list model enum reference"`
	Name    string            `koanf:"name" yaml:"name,omitempty"`
	Label   string            `koanf:"label" yaml:"label,omitempty"`
	Subtype string            `koanf:"subtype" yaml:"subtype,omitempty" validate:"omitempty,oneof=int float"`
	Fields  []FieldDefinition `koanf:"fields" yaml:"fields,omitempty" validate:"dive"`
	Items   *FieldDefinition  `koanf:"items" yaml:"items,omitempty"`
	Models  []string          `koanf:"models" yaml:"models,omitempty"`
	Options []string          `koanf:"options" yaml:"options,omitempty"`
}

// FromInference wraps inferred models in a Config, normalized the same way a
// loaded file would be. Inferred models are treated exactly like user-authored
// ones from this point on.
func FromInference(models []schema.Model) *Config {
	cfg := &Config{}
	for _, model := range models {
		cfg.Models = append(cfg.Models, modelDefinitionFromSchema(model))
	}
	cfg.normalize()
	return cfg
}

func modelDefinitionFromSchema(model schema.Model) ModelDefinition {
	def := ModelDefinition{
		Type:   string(model.Type),
		Name:   model.Name,
		Label:  model.Label,
		IsList: model.IsList,
		Fields: fieldDefinitionsFromSchema(model.Fields),
	}
	if model.Items != nil {
		items := fieldDefinitionFromSchema(*model.Items)
		def.Items = &items
	}
	return def
}

func fieldDefinitionsFromSchema(fields []schema.Field) []FieldDefinition {
	if len(fields) == 0 {
		return nil
	}
	defs := make([]FieldDefinition, 0, len(fields))
	for _, field := range fields {
		defs = append(defs, fieldDefinitionFromSchema(field))
	}
	return defs
}

func fieldDefinitionFromSchema(field schema.Field) FieldDefinition {
	def := FieldDefinition{
		Type:    string(field.Type),
		Name:    field.Name,
		Label:   field.Label,
		Subtype: string(field.Subtype),
		Fields:  fieldDefinitionsFromSchema(field.Fields),
		Models:  append([]string(nil), field.Models...),
	}
	if field.Items != nil {
		items := fieldDefinitionFromSchema(*field.Items)
		def.Items = &items
	}
	return def
}
