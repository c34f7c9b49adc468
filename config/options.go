// Package config holds the caching options that parameterize
// denormalization: [Options], built via functional options in the
// same style as [cache.WithLogger].
package config

import (
	"regexp"

	"github.com/corbinhal/dictgraph/docval"
)

// Options collects every caching option the core accepts as explicit
// configuration (see the dictionary input and caching-options sections
// of the external interface contract). The zero Options has every list
// empty and behaves as a no-op configuration.
type Options struct {
	caseToFilePaths            map[string][][]string
	fileLabels                 []string
	possibleAssociatedEntities []string
	indexFileExtensions        []string

	redactedButNotSuppressed []string
	omittedProjects          []string
	differentiatedEdges      [][3]string
	unindexedByProperty      map[string][]docval.Doc
	supplementRegexes        []*regexp.Regexp
}

// Option configures an Options value at construction.
type Option func(*Options)

// New builds an Options from the given functional options.
func New(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCaseToFilePaths sets the label → label-path(s) table used by
// [denorm.FileAssociations] when computing file associations.
func WithCaseToFilePaths(m map[string][][]string) Option {
	return func(o *Options) { o.caseToFilePaths = m }
}

// WithFileLabels sets the labels considered files for the
// file-association pass.
func WithFileLabels(labels []string) Option {
	return func(o *Options) { o.fileLabels = labels }
}

// WithPossibleAssociatedEntities sets the labels considered associable
// with cases.
func WithPossibleAssociatedEntities(labels []string) Option {
	return func(o *Options) { o.possibleAssociatedEntities = labels }
}

// WithIndexFileExtensions sets the extensions recognized by
// [model.IsIndexFile] for index-file classification.
func WithIndexFileExtensions(exts []string) Option {
	return func(o *Options) { o.indexFileExtensions = exts }
}

// WithRedactedButNotSuppressed sets property names that are redacted in
// output but whose presence is not itself suppressed. Passed through
// verbatim to consumers; the core does not interpret this list itself.
func WithRedactedButNotSuppressed(props []string) Option {
	return func(o *Options) { o.redactedButNotSuppressed = props }
}

// WithOmittedProjects sets project codes to exclude from ingestion and
// denormalization entirely. Passed through verbatim.
func WithOmittedProjects(projects []string) Option {
	return func(o *Options) { o.omittedProjects = projects }
}

// WithDifferentiatedEdges sets (src_label, edge_label, dst_label)
// triples that require special edge disambiguation downstream. Passed
// through verbatim.
func WithDifferentiatedEdges(edges [][3]string) Option {
	return func(o *Options) { o.differentiatedEdges = edges }
}

// WithUnindexedByProperty sets, per label, documents whose matching
// properties should be excluded from the index. Passed through verbatim.
func WithUnindexedByProperty(m map[string][]docval.Doc) Option {
	return func(o *Options) { o.unindexedByProperty = m }
}

// WithSupplementRegexes sets patterns used to recognize supplemental
// file naming conventions. Passed through verbatim.
func WithSupplementRegexes(res []*regexp.Regexp) Option {
	return func(o *Options) { o.supplementRegexes = res }
}

// CaseToFilePaths returns the label-paths configured for caseLabel, or
// nil if caseLabel has no configured file association.
func (o Options) CaseToFilePaths(caseLabel string) [][]string { return o.caseToFilePaths[caseLabel] }

// FileLabels returns the configured file labels.
func (o Options) FileLabels() []string { return o.fileLabels }

// PossibleAssociatedEntities returns the configured associable labels.
func (o Options) PossibleAssociatedEntities() []string { return o.possibleAssociatedEntities }

// IndexFileExtensions returns the configured index-file extensions.
func (o Options) IndexFileExtensions() []string { return o.indexFileExtensions }

// RedactedButNotSuppressed returns the configured property name list.
func (o Options) RedactedButNotSuppressed() []string { return o.redactedButNotSuppressed }

// OmittedProjects returns the configured project code list.
func (o Options) OmittedProjects() []string { return o.omittedProjects }

// DifferentiatedEdges returns the configured edge-disambiguation triples.
func (o Options) DifferentiatedEdges() [][3]string { return o.differentiatedEdges }

// UnindexedByProperty returns the configured per-label exclusion docs.
func (o Options) UnindexedByProperty() map[string][]docval.Doc { return o.unindexedByProperty }

// SupplementRegexes returns the configured supplement-naming patterns.
func (o Options) SupplementRegexes() []*regexp.Regexp { return o.supplementRegexes }
