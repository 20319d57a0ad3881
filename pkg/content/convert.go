package content

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FromYAMLNode converts a decoded yaml.Node into a Value. Mapping nodes keep
// their entries in document order, which is the property the field tree
// builder relies on. JSON documents are parsed through the same path since
// JSON is a YAML subset.
func FromYAMLNode(node *yaml.Node) (Value, error) {
	if node == nil || node.Kind == 0 {
		// A zero node means the decoder was never handed any content, e.g. a
		// markdown file without front matter.
		return Null(), nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)
	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := FromYAMLNode(node.Content[i+1])
			if err != nil {
				return Null(), err
			}
			members = append(members, Member{Key: node.Content[i].Value, Value: value})
		}
		return ObjectValue(members...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := FromYAMLNode(child)
			if err != nil {
				return Null(), err
			}
			items = append(items, value)
		}
		return ArrayValue(items...), nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	default:
		return Null(), fmt.Errorf("content: unsupported yaml node kind %d", node.Kind)
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Null(), fmt.Errorf("content: invalid bool %q: %w", node.Value, err)
		}
		return BoolValue(b), nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return Null(), fmt.Errorf("content: invalid int %q: %w", node.Value, err)
		}
		return IntValue(n), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Null(), fmt.Errorf("content: invalid float %q: %w", node.Value, err)
		}
		return FloatValue(f), nil
	default:
		// Covers !!str and resolver-specific tags such as !!timestamp; the
		// raw text goes through scalar type inference untouched.
		return StringValue(node.Value), nil
	}
}

// FromGo converts a decoded Go value (maps, slices, scalars) into a Value.
// Map keys are sorted because Go maps carry no encounter order; the TOML
// decoder is the only parse path that produces them.
func FromGo(value any) Value {
	switch v := value.(type) {
	case nil:
		return Null()
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case int:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case float64:
		return FloatValue(v)
	case time.Time:
		return StringValue(v.Format(time.RFC3339))
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, key := range keys {
			members = append(members, Member{Key: key, Value: FromGo(v[key])})
		}
		return ObjectValue(members...)
	case []any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, FromGo(item))
		}
		return ArrayValue(items...)
	case []map[string]any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, FromGo(item))
		}
		return ArrayValue(items...)
	default:
		return StringValue(fmt.Sprintf("%v", v))
	}
}
