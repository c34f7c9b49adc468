// Package denorm folds a [tree.NodeTree] into a single denormalized
// [docval.Doc]: the canonical operation this module exists to perform,
// turning a relational graph neighborhood into a search-index document.
package denorm

import (
	"github.com/corbinhal/dictgraph/cache"
	"github.com/corbinhal/dictgraph/docval"
	"github.com/corbinhal/dictgraph/model"
	"github.com/corbinhal/dictgraph/tree"
)

// Build produces the denormalized document for the NodeTree nt, using
// dataModel to look up each visited node's declared properties and
// category. A ToMany child title holds a list of sub-documents in sibling
// order; a ToOne child title holds a single sub-document.
//
// After the graph has finished construction it is read-only, so Build
// holds only shared references and is safe to call concurrently across
// sibling root trees (see [BuildAll]).
func Build(dataModel *model.DataModel, nt tree.NodeTree) docval.Doc {
	doc := baseDoc(dataModel, nt.Node)
	lists := make(map[string][]docval.Scalar)
	for _, child := range nt.Children {
		sub := docval.FromDoc(Build(dataModel, child))
		if child.Correlation == tree.ToMany {
			lists[child.Title] = append(lists[child.Title], sub)
			doc = doc.Set(child.Title, docval.FromList(lists[child.Title]))
			continue
		}
		doc = doc.Set(child.Title, sub)
	}
	return doc
}

// baseDoc produces the un-nested document for a single node: every
// declared, non-hidden property of its type, plus the identity key.
func baseDoc(dataModel *model.DataModel, n cache.Node) docval.Doc {
	doc := docval.New()

	nt, ok := dataModel.Get(n.Label)
	if !ok {
		return doc.Set(n.Label+"_id", docval.String(n.ID))
	}

	for _, prop := range nt.Properties {
		if isHidden(prop.Key, n.Label) {
			continue
		}
		doc = doc.Set(prop.Key, n.Get(prop.Key))
	}

	idKey := n.Label + "_id"
	if nt.Category == model.Analysis {
		idKey = "analysis_id"
	}
	doc = doc.Set(idKey, docval.String(n.ID))

	return doc
}

// isHidden is the denormalizer's visibility predicate: "project_id" is
// hidden on every node whose label is not "project" itself.
func isHidden(key, label string) bool {
	return key == "project_id" && label != "project"
}

// Result pairs a root node's id with its denormalized document, the
// unit [BuildAll] fans work out over and collects back in.
type Result struct {
	RootID string
	Doc    docval.Doc
}
