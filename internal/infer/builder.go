package infer

import (
	"github.com/goliatone/go-siteschema/pkg/content"
	"github.com/goliatone/go-siteschema/pkg/schema"

	"github.com/goliatone/go-siteschema/internal/consolidate"
)

// MarkdownContentField is the sentinel key the file browser injects for the
// body of a markdown document. It is always typed markdown, regardless of
// what the body looks like.
const MarkdownContentField = "markdown_content"

// BuildFields walks an object value and produces one field per typeable
// member, preserving encounter order. It returns (nil, nil) when no member
// could be typed: an empty or all-null document is not a valid model source.
func BuildFields(value content.Value, fieldPath []string) ([]schema.Field, error) {
	if value.Kind() != content.KindObject {
		return nil, nil
	}

	var fields []schema.Field
	for _, member := range value.Members() {
		field, err := buildField(member.Key, member.Value, append(fieldPath, member.Key))
		if err != nil {
			return nil, err
		}
		if field == nil {
			continue
		}
		fields = append(fields, *field)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

// buildField types one object member. A nil result means the member's value
// cannot be typed and the field is dropped.
func buildField(name string, value content.Value, fieldPath []string) (*schema.Field, error) {
	if name == MarkdownContentField {
		return newField(name, schema.FieldTypeMarkdown), nil
	}

	switch value.Kind() {
	case content.KindNull:
		return nil, nil
	case content.KindString:
		return newField(name, ScalarType(value.String())), nil
	case content.KindBool:
		return newField(name, schema.FieldTypeBoolean), nil
	case content.KindNumber:
		field := newField(name, schema.FieldTypeNumber)
		if value.IsInt() {
			field.Subtype = schema.NumberSubtypeInt
		} else {
			field.Subtype = schema.NumberSubtypeFloat
		}
		return field, nil
	case content.KindObject:
		nested, err := BuildFields(value, fieldPath)
		if err != nil {
			return nil, err
		}
		if nested == nil {
			return nil, nil
		}
		field := newField(name, schema.FieldTypeObject)
		field.Fields = nested
		return field, nil
	case content.KindArray:
		listField, err := BuildListField(value.Items(), fieldPath)
		if err != nil {
			return nil, err
		}
		if listField == nil {
			return nil, nil
		}
		listField.Name = name
		listField.Label = schema.DefaultLabel(name)
		return listField, nil
	default:
		return nil, nil
	}
}

// BuildListField types the elements of an array independently and folds the
// per-element definitions into one items definition. It returns (nil, nil)
// for empty arrays, arrays containing nested arrays, and arrays whose
// elements cannot be unified.
func BuildListField(items []content.Value, fieldPath []string) (*schema.Field, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var itemFields []schema.Field
	for _, item := range items {
		switch item.Kind() {
		case content.KindArray:
			// Arrays of arrays are unsupported; the whole list is abandoned.
			return nil, nil
		case content.KindNull:
			continue
		case content.KindObject:
			nested, err := BuildFields(item, fieldPath)
			if err != nil {
				return nil, err
			}
			if nested == nil {
				continue
			}
			itemFields = append(itemFields, schema.Field{Type: schema.FieldTypeObject, Fields: nested})
		case content.KindString:
			itemFields = append(itemFields, schema.Field{Type: ScalarType(item.String())})
		case content.KindBool:
			itemFields = append(itemFields, schema.Field{Type: schema.FieldTypeBoolean})
		case content.KindNumber:
			subtype := schema.NumberSubtypeFloat
			if item.IsInt() {
				subtype = schema.NumberSubtypeInt
			}
			itemFields = append(itemFields, schema.Field{Type: schema.FieldTypeNumber, Subtype: subtype})
		}
	}
	if len(itemFields) == 0 {
		return nil, nil
	}

	itemsField, err := consolidate.ListItems(itemFields)
	if err != nil {
		return nil, err
	}
	if itemsField == nil {
		return nil, nil
	}
	return &schema.Field{Type: schema.FieldTypeList, Items: itemsField}, nil
}

func newField(name string, fieldType schema.FieldType) *schema.Field {
	return &schema.Field{
		Type:  fieldType,
		Name:  name,
		Label: schema.DefaultLabel(name),
	}
}
