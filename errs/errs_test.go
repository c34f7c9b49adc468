package errs_test

import (
	"errors"
	"testing"

	"github.com/corbinhal/dictgraph/errs"
)

func TestNewWrapsMessage(t *testing.T) {
	err := errs.New(errs.BuildError, "dictionary.Resolve", "missing $ref target").WithID("case.yaml")
	if err.Kind() != errs.BuildError {
		t.Fatalf("got kind %v, want BuildError", err.Kind())
	}
	if err.ID() != "case.yaml" {
		t.Fatalf("got id %q, want case.yaml", err.ID())
	}
	if err.Error() == "" {
		t.Fatal("expected non-empty message")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := errs.Wrap(errs.IoError, "dictionary.Load", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find wrapped cause")
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := errs.New(errs.ReferentialError, "cache.AddEdge", "dst not in graph")
	if !errors.Is(err, errs.KindError(errs.ReferentialError)) {
		t.Fatal("expected errors.Is to match by Kind")
	}
	if errors.Is(err, errs.KindError(errs.BuildError)) {
		t.Fatal("did not expect match against a different Kind")
	}
}

func TestKindString(t *testing.T) {
	cases := map[errs.Kind]string{
		errs.BuildError:       "BuildError",
		errs.ConnectionError:  "ConnectionError",
		errs.SourceError:      "SourceError",
		errs.IoError:          "IoError",
		errs.ParseError:       "ParseError",
		errs.ReferentialError: "ReferentialError",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
