package schema

// FieldType enumerates the field kinds understood by the inference engine and
// the declarative config layer.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeMarkdown FieldType = "markdown"
	FieldTypeColor    FieldType = "color"
	FieldTypeImage    FieldType = "image"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeObject   FieldType = "object"
	FieldTypeList     FieldType = "list"

	// FieldTypeModel marks a list items definition that enumerates multiple
	// alternative object shapes. It is produced by consolidation only, never
	// by per-value inference.
	FieldTypeModel FieldType = "model"

	// FieldTypeEnum and FieldTypeReference are reserved for config authors.
	// The inference engine never produces them and treats them as a contract
	// violation when asked to consolidate one.
	FieldTypeEnum      FieldType = "enum"
	FieldTypeReference FieldType = "reference"
)

// NumberSubtype narrows number fields to integral or floating values.
type NumberSubtype string

const (
	NumberSubtypeInt   NumberSubtype = "int"
	NumberSubtypeFloat NumberSubtype = "float"
)

// Field is one node in an inferred or declared schema tree. Name is empty for
// list-item definitions, which are anonymous. Consolidation never mutates a
// Field in place; merged results are always fresh trees.
type Field struct {
	Type    FieldType     `json:"type" yaml:"type"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Label   string        `json:"label,omitempty" yaml:"label,omitempty"`
	Subtype NumberSubtype `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Fields  []Field       `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items   *Field        `json:"items,omitempty" yaml:"items,omitempty"`

	// Models lists the synthetic names of the alternative object models a
	// model-typed items definition refers to. Filled during final assembly.
	Models []string `json:"models,omitempty" yaml:"models,omitempty"`

	// Partials links a model-typed items definition to the object shapes it
	// was consolidated from, before synthetic names exist. Assembly walks the
	// final trees, names each partial, and populates Models from it.
	Partials []*PartialObjectModel `json:"-" yaml:"-"`
}

// PartialObjectModel is an object shape discovered while consolidating list
// items. It becomes a standalone object model once assembly assigns it a
// synthetic name.
type PartialObjectModel struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// ModelType tags the top-level model kinds.
type ModelType string

const (
	ModelTypePage   ModelType = "page"
	ModelTypeData   ModelType = "data"
	ModelTypeObject ModelType = "object"
)

// Model is a named top-level schema entity. Data models derived from a
// JSON/YAML array carry IsList plus an Items definition instead of Fields.
type Model struct {
	Type   ModelType `json:"type" yaml:"type"`
	Name   string    `json:"name" yaml:"name"`
	Label  string    `json:"label,omitempty" yaml:"label,omitempty"`
	Fields []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
	IsList bool      `json:"isList,omitempty" yaml:"isList,omitempty"`
	Items  *Field    `json:"items,omitempty" yaml:"items,omitempty"`
}
