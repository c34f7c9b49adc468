package dictionary

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/corbinhal/dictgraph/docval"
	"github.com/corbinhal/dictgraph/errs"
)

// Parse decodes a single YAML document into a raw SchemaNode tree. The
// returned tree has not had its $ref pointers resolved; use
// [Registry.ResolveAll] for that.
//
// yaml.Node is used rather than decoding into map[string]any because its
// Content slice preserves mapping key order, which a Go map does not —
// and dictionary field order is observable downstream (see [docval.Doc]).
func Parse(name, content string) (*SchemaNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errs.Wrap(errs.ParseError, "dictionary.Parse", err).WithID(name)
	}
	if len(doc.Content) == 0 {
		return &SchemaNode{Key: name}, nil
	}
	root := doc.Content[0]
	node, err := fromYAML(name, root)
	if err != nil {
		return nil, errs.Wrap(errs.ParseError, "dictionary.Parse", err).WithID(name)
	}
	return node, nil
}

func fromYAML(key string, n *yaml.Node) (*SchemaNode, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return &SchemaNode{Key: key, Value: scalarFrom(n)}, nil
	case yaml.MappingNode:
		children := make([]*SchemaNode, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i].Value
			child, err := fromYAML(k, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &SchemaNode{Key: key, Children: children}, nil
	case yaml.SequenceNode:
		children := make([]*SchemaNode, 0, len(n.Content))
		for i, item := range n.Content {
			child, err := fromYAML(strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &SchemaNode{Key: key, Children: children}, nil
	case yaml.AliasNode:
		return fromYAML(key, n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &SchemaNode{Key: key}, nil
		}
		return fromYAML(key, n.Content[0])
	default:
		return &SchemaNode{Key: key, Value: ptr(docval.Null())}, nil
	}
}

func scalarFrom(n *yaml.Node) *docval.Scalar {
	if n.Tag == "!!null" {
		return ptr(docval.Null())
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return ptr(docval.String(n.Value))
	}
	s := docval.FromAny(normalizeYAMLScalar(v))
	return &s
}

// normalizeYAMLScalar widens an int produced by yaml.Node.Decode to
// int64; every other value is returned unchanged for FromAny, which maps
// any type it does not recognize to null.
func normalizeYAMLScalar(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	default:
		return x
	}
}

func ptr(s docval.Scalar) *docval.Scalar { return &s }
