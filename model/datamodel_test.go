package model_test

import (
	"testing"

	"github.com/corbinhal/dictgraph/dictionary"
	"github.com/corbinhal/dictgraph/model"
)

const caseSchema = `
id: "case"
category: administrative
links:
  - target_type: project
    backref: cases
    name: projects
    label: member_of
properties:
  submitter_id:
    type: string
  days_to_death:
    type: integer
`

const projectSchema = `
id: "project"
category: administrative
properties:
  code:
    type: string
`

const analysisSchema = `
id: "analysis"
category: analysis
links:
  - subgroup:
      - target_type: case
        backref: analyses
        name: cases
        label: derived_from
properties: {}
`

func buildModel(t *testing.T) *model.DataModel {
	t.Helper()
	r := dictionary.NewRegistry()
	for name, src := range map[string]string{
		"case.yaml":     caseSchema,
		"project.yaml":  projectSchema,
		"analysis.yaml": analysisSchema,
	} {
		if err := r.Add(name, src); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}
	resolved, err := r.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	dm, err := model.Build(resolved)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return dm
}

func TestBuildLinksAndProperties(t *testing.T) {
	dm := buildModel(t)
	caseType, ok := dm.Get("case")
	if !ok {
		t.Fatal("expected case node type")
	}
	if caseType.Category != model.Administrative {
		t.Errorf("got category %v, want Administrative", caseType.Category)
	}
	if len(caseType.Links) != 1 || caseType.Links[0].Name != "projects" {
		t.Fatalf("unexpected links: %+v", caseType.Links)
	}
	if pt, ok := caseType.PropertyType("days_to_death"); !ok || pt != model.Integer {
		t.Errorf("got %v, %v, want Integer", pt, ok)
	}
	if len(caseType.Properties) != 2 || caseType.Properties[0].Key != "submitter_id" || caseType.Properties[1].Key != "days_to_death" {
		t.Fatalf("expected properties in declaration order, got %+v", caseType.Properties)
	}
}

func TestBuildMirrorsBackref(t *testing.T) {
	dm := buildModel(t)
	project, ok := dm.Get("project")
	if !ok {
		t.Fatal("expected project node type")
	}
	if len(project.Backrefs) != 1 {
		t.Fatalf("expected 1 backref, got %d", len(project.Backrefs))
	}
	br := project.Backrefs[0]
	if br.SrcLabel != "project" || br.DstLabel != "case" || br.Name != "cases" || br.Backref != "projects" {
		t.Errorf("unexpected backref: %+v", br)
	}
}

func TestBuildFlattensSubgroupLinks(t *testing.T) {
	dm := buildModel(t)
	analysis, ok := dm.Get("analysis")
	if !ok {
		t.Fatal("expected analysis node type")
	}
	if len(analysis.Links) != 1 || analysis.Links[0].DstLabel != "case" {
		t.Fatalf("unexpected links: %+v", analysis.Links)
	}
}

func TestBuildRejectsDuplicateLabel(t *testing.T) {
	r := dictionary.NewRegistry()
	if err := r.Add("a.yaml", `id: "dup"`); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add("b.yaml", `id: "dup"`); err != nil {
		t.Fatalf("Add: %v", err)
	}
	resolved, err := r.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	// ResolveAll keys its output by schema id, so two sources sharing an
	// id collapse before reaching Build. Duplicate the entry under a
	// different key to exercise Build's own label-collision check.
	resolved["dup2"] = resolved["dup"]
	if _, err := model.Build(resolved); err == nil {
		t.Fatal("expected duplicate label to fail")
	}
}

func TestParsePropertyTypeCaseInsensitive(t *testing.T) {
	for _, s := range []string{"INTEGER", "Integer", "integer"} {
		pt, err := model.ParsePropertyType(s)
		if err != nil || pt != model.Integer {
			t.Errorf("ParsePropertyType(%q) = %v, %v, want Integer, nil", s, pt, err)
		}
	}
	for _, s := range []string{"datetime", "enum", "DATETIME"} {
		pt, err := model.ParsePropertyType(s)
		if err != nil || pt != model.String {
			t.Errorf("ParsePropertyType(%q) = %v, %v, want String, nil", s, pt, err)
		}
	}
	if _, err := model.ParsePropertyType("not_a_type"); err == nil {
		t.Fatal("expected unrecognized property type to fail")
	}
}
