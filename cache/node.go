// Package cache holds the in-memory, read-mostly property graph that
// backs tree construction and denormalization: [CachedGraph].
//
// Construction (AddNode/AddEdge/RemoveNode) is single-threaded; once
// loaded, the graph is safe for concurrent readers under its internal
// reader-writer lock (see [CachedGraph]).
package cache

import "github.com/corbinhal/dictgraph/docval"

// Node is an immutable graph vertex: a globally unique id, the label of
// its node type, its property and system-annotation docs, and an
// access-control list.
type Node struct {
	ID    string
	Label string
	Props docval.Doc
	Sysan docval.Doc
	ACL   []string
}

// Get returns the value of a property, or null if absent.
func (n Node) Get(key string) docval.Scalar {
	v, ok := n.Props.Get(key)
	if !ok {
		return docval.Null()
	}
	return v
}
