// Package dictgraph caches a heterogeneous property graph in process memory
// and denormalizes it into tree-shaped documents for bulk export.
//
// dictgraph loads a dictionary of node and edge types from a tree of
// YAML-shaped schema files, ingests nodes and edges from an external
// tabular source into an in-memory bidirectional multigraph, and walks a
// declarative type tree over that graph to build nested documents rooted
// at selected nodes — the motivating use being search-index documents
// built from a relational graph warehouse.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - errs: the single error taxonomy
//	  - docval: the Scalar/Doc output primitive
//
//	Schema tier:
//	  - dictionary: parses schema sources and resolves $ref pointers
//	  - model: turns resolved schema trees into NodeType/EdgeType/DataModel
//	  - tablename: bit-exact relational table name derivation
//
//	Graph tier:
//	  - cache: the bidirectional labeled multigraph cache
//	  - tree: TypeTree templates and NodeTree instantiation
//	  - denorm: the tree-driven denormalizer
//
//	Ingestion tier:
//	  - ingest: the external-row adapter contract and bulk loader
//	  - config: caching options threaded through denormalization
//
// # Entry Points
//
// Loading a dictionary and building a data model:
//
//	import (
//	    "github.com/corbinhal/dictgraph/dictionary"
//	    "github.com/corbinhal/dictgraph/model"
//	)
//
//	reg := dictionary.NewRegistry()
//	for name, content := range sources {
//	    err := reg.Add(name, content)
//	}
//	nodes, err := reg.ResolveAll()
//	dm, err := model.Build(nodes)
//
// Ingesting rows and serving traversals:
//
//	import (
//	    "github.com/corbinhal/dictgraph/cache"
//	    "github.com/corbinhal/dictgraph/ingest"
//	)
//
//	g := cache.New()
//	err := ingest.Load(ctx, g, dm, source)
//	neighbors := g.NeighborsLabeled(nodeID, "sample")
//
// Denormalizing a root node:
//
//	import (
//	    "github.com/corbinhal/dictgraph/denorm"
//	    "github.com/corbinhal/dictgraph/tree"
//	)
//
//	root, _ := g.GetNode(caseID)
//	nt := tree.Construct(g, tree.CaseTypeTree(), root)
//	doc := denorm.Build(dm, nt)
//
// # Subpackages
//
//   - [github.com/corbinhal/dictgraph/errs]: error taxonomy
//   - [github.com/corbinhal/dictgraph/docval]: Scalar/Doc output primitive
//   - [github.com/corbinhal/dictgraph/dictionary]: schema source resolution
//   - [github.com/corbinhal/dictgraph/model]: data model construction
//   - [github.com/corbinhal/dictgraph/tablename]: relational table naming
//   - [github.com/corbinhal/dictgraph/cache]: graph cache
//   - [github.com/corbinhal/dictgraph/tree]: type/node trees
//   - [github.com/corbinhal/dictgraph/denorm]: denormalizer
//   - [github.com/corbinhal/dictgraph/ingest]: external-row ingestion
//   - [github.com/corbinhal/dictgraph/config]: caching options
//
// Two internal packages support every tier above: internal/trace
// (logging and request-id propagation) and internal/ident (identifier
// canonicalization used by model).
package dictgraph
