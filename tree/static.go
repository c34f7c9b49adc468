package tree

// SampleTypeTree is the static denormalization template rooted at a
// biospecimen sample, used as a subtree of both the case- and
// file-rooted templates.
func SampleTypeTree() TypeTree {
	return New("sample", "samples", ToMany).
		Child(New("annotation", "annotations", ToMany)).
		Child(New("aliquot", "aliquots", ToMany)).
		Child(New("portion", "portions", ToMany).
			Child(New("annotation", "annotations", ToMany)).
			Child(New("analyte", "analytes", ToMany).
				Child(New("annotation", "annotations", ToMany)).
				Child(New("aliquot", "aliquots", ToMany).
					Child(New("annotation", "annotations", ToMany))).
				Child(New("center", "center", ToOne))).
			Child(New("slide", "slides", ToMany).
				Child(New("annotation", "annotations", ToMany))))
}

// CaseTypeTree is the static denormalization template rooted at a case,
// the canonical root for search-index "case" documents.
func CaseTypeTree() TypeTree {
	return New("case", "cases", ToMany).
		Child(SampleTypeTree()).
		Child(New("annotation", "annotations", ToMany)).
		Child(New("project", "project", ToOne)).
		Child(New("program", "program", ToOne)).
		Child(New("file", "files", ToMany)).
		Child(New("tissue_source_site", "tissue_source_site", ToOne)).
		Child(New("demographic", "demographic", ToOne)).
		Child(New("exposure", "exposures", ToMany)).
		Child(New("diagnosis", "diagnoses", ToMany).
			Child(New("treatment", "treatments", ToMany))).
		Child(New("family_history", "family_history", ToMany))
}

// FileTypeTree is the static denormalization template rooted at a data
// file, the canonical root for search-index "file" documents: it
// surfaces the cases (and, transitively, biospecimen) a file is
// associated with, plus any index file associated with it.
func FileTypeTree() TypeTree {
	return New("file", "files", ToMany).
		Child(New("case", "cases", ToMany).
			Child(SampleTypeTree()).
			Child(New("project", "project", ToOne))).
		Child(New("annotation", "annotations", ToMany)).
		Child(New("center", "center", ToOne)).
		Child(New("index_file", "index_files", ToMany))
}
