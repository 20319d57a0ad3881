// Package consolidate merges independently inferred field trees into a
// minimal set of shared shapes. It unifies value types through coercion
// rules, merges object field sets by name, and clusters structurally similar
// shapes with a Dice similarity coefficient.
//
// All functions return (nil, nil) when the inputs cannot be unified; callers
// must drop the field or shape rather than substitute a default. Errors are
// reserved for contract violations, such as being handed an enum or
// reference field, which inference never produces.
package consolidate

import (
	"fmt"

	"github.com/goliatone/go-siteschema/pkg/schema"
)

// stringLike is the set of types that can coerce into one another. Grouping
// signatures collapse all of them to plain string.
var stringLike = map[schema.FieldType]bool{
	schema.FieldTypeString:   true,
	schema.FieldTypeText:     true,
	schema.FieldTypeMarkdown: true,
	schema.FieldTypeDate:     true,
	schema.FieldTypeDatetime: true,
	schema.FieldTypeColor:    true,
	schema.FieldTypeImage:    true,
}

// ListItems folds N anonymous list-item definitions into one items
// definition. Object items are grouped by exact shape signature first;
// multiple irreducible shapes become a model items definition enumerating
// each shape as a partial object model.
func ListItems(items []schema.Field) (*schema.Field, error) {
	return unify(items, true)
}

// Fields folds N same-named field definitions into one field, keeping the
// name and label of the first input. Object fields merge their field sets
// directly: a named field never becomes a multi-shape model definition.
func Fields(fields []schema.Field) (*schema.Field, error) {
	merged, err := unify(fields, false)
	if merged == nil || err != nil {
		return nil, err
	}
	merged.Name = fields[0].Name
	merged.Label = fields[0].Label
	return merged, nil
}

func unify(items []schema.Field, listContext bool) (*schema.Field, error) {
	if len(items) == 0 {
		return nil, nil
	}

	types := distinctTypes(items)
	for _, fieldType := range types {
		switch fieldType {
		case schema.FieldTypeEnum, schema.FieldTypeReference:
			return nil, fmt.Errorf("consolidate: %s field cannot appear in inference output", fieldType)
		case schema.FieldTypeModel:
			// A model items definition is already consolidated; folding one
			// again cannot be expressed, so the whole unification fails.
			return nil, nil
		}
	}

	if len(types) > 1 {
		coerced, ok := CoerceSimpleTypes(types)
		if !ok {
			return nil, nil
		}
		return &schema.Field{Type: coerced}, nil
	}

	switch fieldType := types[0]; fieldType {
	case schema.FieldTypeObject:
		return unifyObjects(items, listContext)
	case schema.FieldTypeList:
		return unifyLists(items)
	case schema.FieldTypeNumber:
		return &schema.Field{Type: fieldType, Subtype: unanimousSubtype(items)}, nil
	default:
		return &schema.Field{Type: fieldType}, nil
	}
}

func unifyObjects(items []schema.Field, listContext bool) (*schema.Field, error) {
	sequences := make([][]schema.Field, 0, len(items))
	for _, item := range items {
		sequences = append(sequences, item.Fields)
	}

	if !listContext {
		merged, err := MergeObjectFieldsList(sequences)
		if merged == nil || err != nil {
			return nil, err
		}
		return &schema.Field{Type: schema.FieldTypeObject, Fields: merged}, nil
	}

	shapes, err := ObjectShapes(sequences)
	if shapes == nil || err != nil {
		return nil, err
	}
	if len(shapes) == 1 {
		return &schema.Field{Type: schema.FieldTypeObject, Fields: shapes[0]}, nil
	}

	partials := make([]*schema.PartialObjectModel, 0, len(shapes))
	for _, shape := range shapes {
		partials = append(partials, &schema.PartialObjectModel{Fields: shape})
	}
	return &schema.Field{Type: schema.FieldTypeModel, Partials: partials}, nil
}

func unifyLists(items []schema.Field) (*schema.Field, error) {
	var inner []schema.Field
	for _, item := range items {
		if item.Items == nil {
			continue
		}
		inner = append(inner, *item.Items)
	}
	if len(inner) == 0 {
		return nil, nil
	}

	merged, err := ListItems(inner)
	if merged == nil || err != nil {
		return nil, err
	}
	return &schema.Field{Type: schema.FieldTypeList, Items: merged}, nil
}

// CoerceSimpleTypes resolves a mixed type set when every member is
// string-like: markdown wins over text, text wins over string, and any other
// string-like mixture collapses to plain string. Mixtures involving
// non-string-like types cannot be coerced.
func CoerceSimpleTypes(types []schema.FieldType) (schema.FieldType, bool) {
	hasMarkdown := false
	hasText := false
	for _, fieldType := range types {
		if !stringLike[fieldType] {
			return "", false
		}
		switch fieldType {
		case schema.FieldTypeMarkdown:
			hasMarkdown = true
		case schema.FieldTypeText:
			hasText = true
		}
	}
	switch {
	case hasMarkdown:
		return schema.FieldTypeMarkdown, true
	case hasText:
		return schema.FieldTypeText, true
	default:
		return schema.FieldTypeString, true
	}
}

func distinctTypes(items []schema.Field) []schema.FieldType {
	seen := make(map[schema.FieldType]bool, len(items))
	var types []schema.FieldType
	for _, item := range items {
		if seen[item.Type] {
			continue
		}
		seen[item.Type] = true
		types = append(types, item.Type)
	}
	return types
}

func unanimousSubtype(items []schema.Field) schema.NumberSubtype {
	subtype := items[0].Subtype
	for _, item := range items[1:] {
		if item.Subtype != subtype {
			return ""
		}
	}
	return subtype
}

// groupingType collapses string-like types to string for signature and
// similarity purposes only; the final merge still distinguishes them.
func groupingType(fieldType schema.FieldType) schema.FieldType {
	if stringLike[fieldType] {
		return schema.FieldTypeString
	}
	return fieldType
}
