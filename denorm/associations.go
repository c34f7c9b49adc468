package denorm

import (
	"github.com/corbinhal/dictgraph/cache"
	"github.com/corbinhal/dictgraph/config"
	"github.com/corbinhal/dictgraph/docval"
	"github.com/corbinhal/dictgraph/model"
)

// FileAssociations returns the denormalized documents for every
// file-labeled node reachable from root along one of the label-paths
// configured for root's label (opts.CaseToFilePaths). Only nodes reached
// at the end of a path are considered — intermediate hops (e.g. the
// sample or portion a file is attached through) are not files themselves
// and are not collected. Of those, only nodes whose label is in
// opts.FileLabels are returned; each returned document is additionally
// tagged with is_index_file per [model.IsIndexFile].
func FileAssociations(dataModel *model.DataModel, graph *cache.CachedGraph, root cache.Node, opts config.Options) []docval.Doc {
	paths := opts.CaseToFilePaths(root.Label)
	if len(paths) == 0 {
		return nil
	}

	fileLabels := make(map[string]bool, len(opts.FileLabels()))
	for _, l := range opts.FileLabels() {
		fileLabels[l] = true
	}

	var out []docval.Doc
	for _, n := range graph.WalkPaths(root.ID, paths, false) {
		if !fileLabels[n.Label] {
			continue
		}
		doc := baseDoc(dataModel, n)
		doc = doc.Set("is_index_file", docval.Bool(model.IsIndexFile(n.Label, doc, opts)))
		out = append(out, doc)
	}
	return out
}
