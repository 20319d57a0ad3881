package consolidate

import "github.com/goliatone/go-siteschema/pkg/schema"

// DefaultDSCThreshold is the similarity cutoff for clustering page shapes. A
// pair of shapes may diverge by up to a quarter of their combined field set
// and still merge, so an optional front-matter field does not fragment the
// page model.
const DefaultDSCThreshold = 0.75

// ShapeTokens represents a field sequence as a token set for similarity
// scoring. Each token pairs a field name with its grouping type.
func ShapeTokens(fields []schema.Field) map[string]struct{} {
	tokens := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		tokens[field.Name+":"+string(groupingType(field.Type))] = struct{}{}
	}
	return tokens
}

// Dice computes the Dice similarity coefficient 2|a∩b|/(|a|+|b|) over two
// token sets. Two empty sets are considered identical.
func Dice(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	return 2 * float64(intersection) / float64(len(a)+len(b))
}

// ObjectShapesWithDSC clusters field sequences by Dice similarity and merges
// each cluster into one shape. The worklist is processed greedily: one shape
// is popped as the accumulator, every remaining shape is scored against it in
// a single pass, and shapes at or above the threshold fold into the
// accumulator as the pass proceeds. Shapes below the threshold, and shapes
// whose merge fails, are deferred to the next round.
func ObjectShapesWithDSC(sequences [][]schema.Field, threshold float64) ([][]schema.Field, error) {
	pending := make([][]schema.Field, len(sequences))
	copy(pending, sequences)

	var shapes [][]schema.Field
	for len(pending) > 0 {
		accumulator := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		var deferred [][]schema.Field
		for _, candidate := range pending {
			if Dice(ShapeTokens(accumulator), ShapeTokens(candidate)) >= threshold {
				merged, err := MergeObjectFieldsList([][]schema.Field{accumulator, candidate})
				if err != nil {
					return nil, err
				}
				if merged != nil {
					accumulator = merged
					continue
				}
			}
			deferred = append(deferred, candidate)
		}
		shapes = append(shapes, accumulator)
		pending = deferred
	}
	return shapes, nil
}
