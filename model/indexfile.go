package model

import (
	"strings"

	"github.com/corbinhal/dictgraph/config"
	"github.com/corbinhal/dictgraph/docval"
)

// IsIndexFile reports whether a node carrying the given label and
// properties is an index file: its label must be one of
// opts.FileLabels, and its file_name property's extension must match
// one of opts.IndexFileExtensions, case-insensitively.
func IsIndexFile(label string, props docval.Doc, opts config.Options) bool {
	if !containsString(opts.FileLabels(), label) {
		return false
	}
	name, ok := props.Get("file_name")
	if !ok {
		return false
	}
	s, ok := name.String()
	if !ok {
		return false
	}
	lower := strings.ToLower(s)
	for _, ext := range opts.IndexFileExtensions() {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
