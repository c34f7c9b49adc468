package model

import (
	"github.com/corbinhal/dictgraph/dictionary"
	"github.com/corbinhal/dictgraph/errs"
	"github.com/corbinhal/dictgraph/internal/ident"
)

// EdgeType is a declared relationship between two node labels. Two
// EdgeTypes are produced per declared link: the forward relationship
// and its mirrored backref, carried on the destination NodeType.
type EdgeType struct {
	SrcLabel string
	DstLabel string
	Label    string
	Name     string
	Backref  string
}

// Property is one declared property of a NodeType, in the order the
// dictionary schema declared it.
type Property struct {
	Key  string
	Type PropertyType
}

// NodeType is the schema-derived shape of every node carrying a given
// label: its category, its declared properties, and its forward/back
// relationships. Properties preserves declaration order, since that
// order flows through to the field order of every denormalized Doc
// built from nodes of this type.
type NodeType struct {
	Label      string
	Category   NodeCategory
	Properties []Property
	Links      []EdgeType
	Backrefs   []EdgeType
}

// PropertyType returns the declared type of the property named key, and
// whether it was declared at all.
func (nt *NodeType) PropertyType(key string) (PropertyType, bool) {
	for _, p := range nt.Properties {
		if p.Key == key {
			return p.Type, true
		}
	}
	return 0, false
}

// DataModel is the label-keyed collection of every concrete NodeType
// resolved from the dictionary.
type DataModel struct {
	types map[string]*NodeType
}

// Get returns the NodeType for label, if present.
func (m *DataModel) Get(label string) (*NodeType, bool) {
	if m == nil {
		return nil, false
	}
	t, ok := m.types[label]
	return t, ok
}

// Labels returns every label present in the model, in no particular order.
func (m *DataModel) Labels() []string {
	out := make([]string, 0, len(m.types))
	for l := range m.types {
		out = append(out, l)
	}
	return out
}

// Build constructs a DataModel from every non-abstract resolved schema.
// schemas is typically the output of [dictionary.Registry.ResolveAll];
// abstract entries (see [dictionary.IsAbstract]) are ignored rather than
// turned into node types.
func Build(schemas map[string]*dictionary.SchemaNode) (*DataModel, error) {
	m := &DataModel{types: make(map[string]*NodeType, len(schemas))}

	for id, root := range schemas {
		if dictionary.IsAbstract(id) {
			continue
		}
		nt, err := buildNodeType(root)
		if err != nil {
			return nil, err
		}
		if _, exists := m.types[nt.Label]; exists {
			return nil, errs.New(errs.BuildError, "model.Build", "duplicate node label "+nt.Label)
		}
		m.types[nt.Label] = nt
	}

	for _, nt := range m.types {
		for _, link := range nt.Links {
			backref := EdgeType{
				SrcLabel: link.DstLabel,
				DstLabel: link.SrcLabel,
				Label:    link.Label,
				Name:     link.Backref,
				Backref:  link.Name,
			}
			dst, ok := m.types[link.DstLabel]
			if !ok {
				return nil, errs.New(errs.BuildError, "model.Build", "link targets unknown label "+link.DstLabel).WithID(nt.Label)
			}
			dst.Backrefs = append(dst.Backrefs, backref)
		}
	}

	return m, nil
}

func buildNodeType(root *dictionary.SchemaNode) (*NodeType, error) {
	rawLabel, ok := root.ChildString("id")
	if !ok {
		return nil, errs.New(errs.BuildError, "model.buildNodeType", "schema missing id")
	}
	label := ident.ToLowerSnake(rawLabel)

	categoryStr, _ := root.ChildString("category")
	category := ParseCategory(categoryStr)

	links, err := buildLinks(label, root)
	if err != nil {
		return nil, err
	}

	linkNames := make(map[string]bool, len(links))
	for _, l := range links {
		linkNames[l.Name] = true
	}

	props, err := buildProperties(root, linkNames)
	if err != nil {
		return nil, err
	}

	return &NodeType{
		Label:      label,
		Category:   category,
		Properties: props,
		Links:      links,
	}, nil
}

func buildLinks(srcLabel string, root *dictionary.SchemaNode) ([]EdgeType, error) {
	linksNode, ok := root.Child("links")
	if !ok {
		return nil, nil
	}

	var edges []EdgeType
	for _, entry := range linksNode.Children {
		if subgroup, ok := entry.Child("subgroup"); ok {
			for _, link := range subgroup.Children {
				e, err := buildLink(srcLabel, link)
				if err != nil {
					return nil, err
				}
				edges = append(edges, e)
			}
			continue
		}
		e, err := buildLink(srcLabel, entry)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func buildLink(srcLabel string, n *dictionary.SchemaNode) (EdgeType, error) {
	dst, ok := n.ChildString("target_type")
	if !ok {
		return EdgeType{}, errs.New(errs.BuildError, "model.buildLink", "link missing target_type").WithID(srcLabel)
	}
	backref, ok := n.ChildString("backref")
	if !ok {
		return EdgeType{}, errs.New(errs.BuildError, "model.buildLink", "link missing backref").WithID(srcLabel)
	}
	name, ok := n.ChildString("name")
	if !ok {
		return EdgeType{}, errs.New(errs.BuildError, "model.buildLink", "link missing name").WithID(srcLabel)
	}
	label, ok := n.ChildString("label")
	if !ok {
		return EdgeType{}, errs.New(errs.BuildError, "model.buildLink", "link missing label").WithID(srcLabel)
	}
	return EdgeType{
		SrcLabel: srcLabel,
		DstLabel: ident.ToLowerSnake(dst),
		Label:    ident.ToLowerSnake(label),
		Name:     ident.ToLowerSnake(name),
		Backref:  ident.ToLowerSnake(backref),
	}, nil
}

func buildProperties(root *dictionary.SchemaNode, linkNames map[string]bool) ([]Property, error) {
	propsNode, ok := root.Child("properties")
	if !ok {
		return nil, nil
	}

	out := make([]Property, 0, len(propsNode.Children))
	for _, prop := range propsNode.Children {
		key := ident.ToLowerSnake(prop.Key)
		if linkNames[key] {
			continue
		}
		typeStr, ok := prop.ChildString("type")
		if !ok {
			out = append(out, Property{Key: key, Type: String})
			continue
		}
		pt, err := ParsePropertyType(typeStr)
		if err != nil {
			return nil, errs.Wrap(errs.BuildError, "model.buildProperties", err).WithID(key)
		}
		out = append(out, Property{Key: key, Type: pt})
	}
	return out, nil
}
