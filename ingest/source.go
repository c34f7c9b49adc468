// Package ingest bulk-loads a [cache.CachedGraph] from an external
// relational source, given the contract described by [Source]: one node
// table per label (columns node_id, _props, _sysan, acl) and one edge
// table per declared link (see package tablename), columns (src_id,
// dst_id).
package ingest

import "context"

// NodeRow is one row of a node table as the external source returns it.
// Props and Sysan are raw JSON object text; malformed or non-object JSON
// in either field is a row-level [errs.SourceError].
type NodeRow struct {
	NodeID string
	Props  string
	Sysan  string
	ACL    []string
}

// EdgeRow is one row of an edge table.
type EdgeRow struct {
	SrcID string
	DstID string
}

// Source is the external collaborator contract: a relational store
// exposing exactly the row shape described in the package doc comment.
// Implementations are free to back this with any storage (Postgres,
// a batch export, a test fixture) as long as table and column names
// match.
type Source interface {
	// NodeRows returns every row of the given node table.
	NodeRows(ctx context.Context, table string) ([]NodeRow, error)
	// EdgeRows returns every row of the given edge table.
	EdgeRows(ctx context.Context, table string) ([]EdgeRow, error)
}
