package cache

import "github.com/corbinhal/dictgraph/errs"

// referentialError builds the error AddEdge returns when an endpoint is
// absent from the graph.
func referentialError(op, nodeID string) error {
	return errs.New(errs.ReferentialError, op, "edge endpoint not present in graph").WithID(nodeID)
}
