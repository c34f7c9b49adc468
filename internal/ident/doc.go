// Package ident provides rune-aware identifier tokenization and case
// conversion utilities for dictgraph.
//
// # Internal Package
//
// This package is internal to the dictgraph module and is not importable
// by external consumers per Go's internal/ package semantics. The model
// layer uses [ToLowerSnake] to canonicalize schema-declared labels, link
// names, and property keys, since dictionary sources are not guaranteed
// to use consistent casing.
//
// # lower_snake Algorithm
//
// The [ToLowerSnake] function implements the canonical lower_snake algorithm
// for relation name normalization (schema relation names to JSON field names).
//
// Common transformations:
//
//	WORKS_AT   -> works_at
//	HTTPProxy  -> http_proxy
//	CreatedBy  -> created_by
//	UserID     -> user_id
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
// No global state is maintained.
//
// # Stdlib-Only Dependencies
//
// This package depends only on stdlib. It has no dependencies on other packages
// and can be imported by any layer.
package ident
