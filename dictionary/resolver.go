package dictionary

import (
	"strings"

	"github.com/corbinhal/dictgraph/errs"
)

// refField is the mapping key whose string value is a pointer, e.g.
// "_definitions.yaml#/ubiquitous_properties" or "#/shared_properties" for
// a same-file reference.
const refField = "$ref"

// Source is one parsed (but not yet resolved) dictionary file.
type Source struct {
	// Filename is the source's name as given to [Registry.Add], e.g.
	// "case.yaml". Used as the left-hand side of a cross-file $ref.
	Filename string
	Root     *SchemaNode
}

// ID returns the schema's declared id field, if present.
func (s Source) ID() (string, bool) {
	return s.Root.ChildString("id")
}

// IsAbstract reports whether a schema id marks it as a template to be
// spliced into other schemas rather than built into a NodeType of its
// own. By convention an id beginning with "_" is abstract.
func IsAbstract(id string) bool {
	return strings.HasPrefix(id, "_")
}

// Registry holds every parsed [Source] and resolves $ref pointers across
// them.
type Registry struct {
	byFilename map[string]*Source
	byID       map[string]*Source
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byFilename: make(map[string]*Source),
		byID:       make(map[string]*Source),
	}
}

// Add parses content under the given filename and registers it for $ref
// resolution. metaschema.yaml and anything under a "projects/" path are
// dictionary tooling, not schema, and should not be passed to Add.
func (r *Registry) Add(filename, content string) error {
	root, err := Parse(filename, content)
	if err != nil {
		return err
	}
	src := &Source{Filename: filename, Root: root}
	r.byFilename[filename] = src
	if id, ok := src.ID(); ok {
		r.byID[id] = src
	}
	return nil
}

// ResolveAll resolves every registered source's $ref pointers and
// returns one SchemaNode tree per source, keyed by the source's declared
// id. Abstract schemas (see [IsAbstract]) are included in the result;
// callers that build node types from the result should skip them.
func (r *Registry) ResolveAll() (map[string]*SchemaNode, error) {
	out := make(map[string]*SchemaNode, len(r.byFilename))
	for _, src := range r.byFilename {
		id, ok := src.ID()
		if !ok {
			continue
		}
		resolved, err := r.resolve(src, nil)
		if err != nil {
			return nil, err
		}
		out[id] = resolved
	}
	return out, nil
}

// chainEntry identifies one $ref pointer currently being expanded, so a
// pointer that (directly or transitively) targets itself can be
// detected instead of recursing forever.
type chainEntry struct {
	filename string
	pointer  string
}

func (r *Registry) resolve(src *Source, stack []chainEntry) (*SchemaNode, error) {
	return r.resolveNode(src.Root, src, stack)
}

func (r *Registry) resolveNode(n *SchemaNode, src *Source, stack []chainEntry) (*SchemaNode, error) {
	if n == nil {
		return nil, nil
	}
	if n.IsLeaf() {
		return &SchemaNode{Key: n.Key, Value: n.Value}, nil
	}

	out := &SchemaNode{Key: n.Key}
	for _, child := range n.Children {
		if child.Key == refField {
			pointer, ok := child.String()
			if !ok {
				return nil, errs.New(errs.BuildError, "dictionary.resolve", "$ref value must be a string").WithID(src.Filename)
			}
			spliced, err := r.followRef(pointer, src, stack)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, spliced.Children...)
			continue
		}
		resolvedChild, err := r.resolveNode(child, src, stack)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, resolvedChild)
	}
	return out, nil
}

// followRef resolves one "<filename>#/<path>" or "#/<path>" pointer to
// its target subtree, fully resolving that subtree's own $refs before
// returning it for splicing.
func (r *Registry) followRef(pointer string, src *Source, stack []chainEntry) (*SchemaNode, error) {
	filename, path, ok := strings.Cut(pointer, "#")
	if !ok {
		return nil, errs.New(errs.BuildError, "dictionary.followRef", "$ref missing '#'").WithID(pointer)
	}

	target := src
	if filename != "" {
		byID, ok := r.byID[strings.TrimSuffix(filename, extOf(filename))]
		if !ok {
			byFilename, ok2 := r.byFilename[filename]
			if !ok2 {
				return nil, errs.New(errs.BuildError, "dictionary.followRef", "$ref targets unknown schema "+filename).WithID(src.Filename)
			}
			target = byFilename
		} else {
			target = byID
		}
	}

	entry := chainEntry{filename: target.Filename, pointer: path}
	for _, seen := range stack {
		if seen == entry {
			return nil, errs.New(errs.BuildError, "dictionary.followRef", "cycle detected resolving $ref "+pointer).WithID(src.Filename)
		}
	}
	stack = append(stack, entry)

	node, err := locate(target.Root, strings.Split(strings.Trim(path, "/"), "/"))
	if err != nil {
		return nil, errs.Wrap(errs.BuildError, "dictionary.followRef", err).WithID(pointer)
	}
	return r.resolveNode(node, target, stack)
}

// locate walks a slash-separated path of child keys from root.
func locate(root *SchemaNode, segments []string) (*SchemaNode, error) {
	cur := root
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		child, ok := cur.Child(seg)
		if !ok {
			return nil, errs.New(errs.BuildError, "dictionary.locate", "no such path segment "+seg)
		}
		cur = child
	}
	return cur, nil
}

// extOf returns the "." plus file extension suffix of filename, or "" if
// there is none. Used to strip ".yaml" from a $ref's filename half when
// the registry only knows the schema by its declared id.
func extOf(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i:]
}
