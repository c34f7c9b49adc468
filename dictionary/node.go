// Package dictionary parses a tree of YAML-shaped schema source files and
// resolves cross-file $ref pointers into a flat [SchemaNode] tree per
// schema (abstract schemas included).
//
// Resolution never evaluates or validates property values — that is the
// data model builder's job (package model). dictionary only normalizes
// the shape of the dictionary: splicing $ref targets into place so that
// downstream code never has to follow a pointer itself.
package dictionary

import "github.com/corbinhal/dictgraph/docval"

// SchemaNode is one node of a resolved (or raw, pre-resolution) schema
// tree: a key, an optional scalar value, and an ordered list of children.
//
// A leaf node (e.g. a string or boolean property) has a non-nil Value and
// no Children. An internal node (a YAML mapping or sequence) has nil
// Value and one SchemaNode per mapping entry or sequence element, in
// source order. Sequence children carry their positional index (as a
// base-10 string) as Key; this is never meaningful to compare against a
// dictionary field name, only used to preserve order during traversal.
type SchemaNode struct {
	Key      string
	Value    *docval.Scalar
	Children []*SchemaNode
}

// IsLeaf reports whether this node holds a scalar value rather than
// children.
func (n *SchemaNode) IsLeaf() bool {
	return n != nil && n.Value != nil
}

// Child returns the first child with the given key, if any.
func (n *SchemaNode) Child(key string) (*SchemaNode, bool) {
	if n == nil {
		return nil, false
	}
	for _, c := range n.Children {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// String returns the node's scalar value as a string, if it is a leaf
// holding a string.
func (n *SchemaNode) String() (string, bool) {
	if n == nil || n.Value == nil {
		return "", false
	}
	return n.Value.String()
}

// ChildString is a convenience for Child(key) followed by String().
func (n *SchemaNode) ChildString(key string) (string, bool) {
	c, ok := n.Child(key)
	if !ok {
		return "", false
	}
	return c.String()
}

// clone returns a deep copy of the subtree rooted at n, with a new Key.
// Scalar values are shared with the original rather than copied.
func (n *SchemaNode) clone(newKey string) *SchemaNode {
	if n == nil {
		return nil
	}
	out := &SchemaNode{Key: newKey, Value: n.Value}
	if n.Children != nil {
		out.Children = make([]*SchemaNode, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.clone(c.Key)
		}
	}
	return out
}
