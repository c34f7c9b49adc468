// Package model turns resolved dictionary schema trees
// ([dictionary.SchemaNode]) into the typed data model the graph cache and
// denormalizer operate against: [NodeType], [EdgeType], and the label-keyed
// [DataModel].
package model

// NodeCategory classifies a node type for denormalizer identity-key
// naming (see [DataModel] and package denorm).
type NodeCategory uint8

const (
	Other NodeCategory = iota
	DataFile
	Biospecimen
	Notation
	Administrative
	Analysis
	Clinical
	IndexFile
	MetadataFile
)

// categoryStrings is the fixed dictionary-string to NodeCategory mapping.
// Any string not present here maps to Other.
var categoryStrings = map[string]NodeCategory{
	"data_file":      DataFile,
	"biospecimen":    Biospecimen,
	"notation":       Notation,
	"administrative": Administrative,
	"analysis":       Analysis,
	"clinical":       Clinical,
	"index_file":     IndexFile,
	"metadata_file":  MetadataFile,
}

// ParseCategory maps a schema's declared category string to a
// NodeCategory. Unrecognized strings (including empty) map to Other,
// never an error — category only affects identity-key naming and has no
// closed-set contract at the schema boundary.
func ParseCategory(s string) NodeCategory {
	if c, ok := categoryStrings[s]; ok {
		return c
	}
	return Other
}

func (c NodeCategory) String() string {
	switch c {
	case DataFile:
		return "data_file"
	case Biospecimen:
		return "biospecimen"
	case Notation:
		return "notation"
	case Administrative:
		return "administrative"
	case Analysis:
		return "analysis"
	case Clinical:
		return "clinical"
	case IndexFile:
		return "index_file"
	case MetadataFile:
		return "metadata_file"
	default:
		return "other"
	}
}
