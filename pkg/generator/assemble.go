package generator

import (
	"fmt"

	"github.com/goliatone/go-siteschema/pkg/schema"
)

// assembleObjectModels walks the final field trees in order, assigns a
// synthetic object_<n> name to each partial object model it discovers, and
// appends the resulting object models to the model list. Partials created by
// intermediate consolidation steps and later discarded are never reached by
// this walk, so they get no name and no model.
func assembleObjectModels(models []schema.Model) []schema.Model {
	asm := &assembler{}
	for i := range models {
		asm.walkFields(models[i].Fields)
		if models[i].Items != nil {
			asm.walkField(models[i].Items)
		}
	}
	return append(models, asm.objectModels...)
}

type assembler struct {
	count        int
	objectModels []schema.Model
}

func (a *assembler) walkFields(fields []schema.Field) {
	for i := range fields {
		a.walkField(&fields[i])
	}
}

func (a *assembler) walkField(field *schema.Field) {
	switch field.Type {
	case schema.FieldTypeObject:
		a.walkFields(field.Fields)
	case schema.FieldTypeList:
		if field.Items != nil {
			a.walkField(field.Items)
		}
	case schema.FieldTypeModel:
		field.Models = field.Models[:0]
		for _, partial := range field.Partials {
			if partial.Name == "" {
				a.count++
				partial.Name = fmt.Sprintf("object_%d", a.count)
				a.objectModels = append(a.objectModels, schema.Model{
					Type:   schema.ModelTypeObject,
					Name:   partial.Name,
					Label:  schema.DefaultLabel(partial.Name),
					Fields: partial.Fields,
				})
				// A partial's own fields may nest further partials.
				a.walkFields(partial.Fields)
			}
			field.Models = append(field.Models, partial.Name)
		}
	}
}
