package consolidate

import (
	"sort"
	"strings"

	"github.com/goliatone/go-siteschema/pkg/schema"
)

// MergeObjectFieldsList merges multiple field sequences assumed to describe
// the same logical object. Fields are grouped by name in first-encounter
// order and each group is unified; if any group cannot be unified, the whole
// merge fails. Partial merges are never produced.
func MergeObjectFieldsList(sequences [][]schema.Field) ([]schema.Field, error) {
	if len(sequences) == 0 {
		return nil, nil
	}

	var order []string
	byName := make(map[string][]schema.Field)
	for _, sequence := range sequences {
		for _, field := range sequence {
			if _, seen := byName[field.Name]; !seen {
				order = append(order, field.Name)
			}
			byName[field.Name] = append(byName[field.Name], field)
		}
	}

	merged := make([]schema.Field, 0, len(order))
	for _, name := range order {
		field, err := Fields(byName[name])
		if err != nil {
			return nil, err
		}
		if field == nil {
			return nil, nil
		}
		merged = append(merged, *field)
	}
	if len(merged) == 0 {
		return nil, nil
	}
	return merged, nil
}

// ObjectShapes partitions field sequences by exact shape signature and merges
// each partition independently. Sequences sharing every field name and
// grouping type collapse into a single shape; dissimilar sequences stay
// separate. Any partition that fails to merge fails the whole call.
func ObjectShapes(sequences [][]schema.Field) ([][]schema.Field, error) {
	if len(sequences) == 0 {
		return nil, nil
	}

	var order []string
	groups := make(map[string][][]schema.Field)
	for _, sequence := range sequences {
		key := signatureKey(sequence)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], sequence)
	}

	shapes := make([][]schema.Field, 0, len(order))
	for _, key := range order {
		merged, err := MergeObjectFieldsList(groups[key])
		if err != nil {
			return nil, err
		}
		if merged == nil {
			return nil, nil
		}
		shapes = append(shapes, merged)
	}
	return shapes, nil
}

// signatureKey builds the exact {name: groupingType} signature for a field
// sequence. Tokens are sorted so signatures are order-independent.
func signatureKey(fields []schema.Field) string {
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, field.Name+":"+string(groupingType(field.Type)))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ",")
}
