package docval_test

import (
	"testing"

	"github.com/corbinhal/dictgraph/docval"
)

func TestSetPreservesInsertionOrder(t *testing.T) {
	d := docval.New().
		Set("tissue", docval.String("lung")).
		Set("sample_id", docval.String("S1")).
		Set("weight", docval.Float(1.5))

	want := []string{"tissue", "sample_id", "weight"}
	got := d.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("key %d: got %q, want %q", i, got[i], k)
		}
	}
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	d := docval.New().
		Set("a", docval.Int(1)).
		Set("b", docval.Int(2)).
		Set("a", docval.Int(3))

	want := []string{"a", "b"}
	got := d.Keys()
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
	v, ok := d.Get("a")
	if !ok {
		t.Fatal("expected key a to be present")
	}
	n, _ := v.Int()
	if n != 3 {
		t.Fatalf("got %d, want 3", n)
	}
}

func TestHasDistinguishesAbsentFromNull(t *testing.T) {
	d := docval.New().Set("x", docval.Null())
	if !d.Has("x") {
		t.Fatal("expected x to be present (explicit null)")
	}
	if d.Has("y") {
		t.Fatal("did not expect y to be present")
	}
	v, _ := d.Get("x")
	if !v.IsNull() {
		t.Fatal("expected x to be null")
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	d := docval.New().Set("a", docval.Int(1)).Set("b", docval.Int(2))
	d2 := d.Delete("a")
	if d2.Has("a") {
		t.Fatal("expected a to be deleted")
	}
	if !d.Has("a") {
		t.Fatal("original Doc must be unmodified")
	}
}

func TestSetIsImmutable(t *testing.T) {
	base := docval.New().Set("a", docval.Int(1))
	withB := base.Set("b", docval.Int(2))
	if base.Has("b") {
		t.Fatal("mutating derived Doc must not affect base")
	}
	if !withB.Has("a") || !withB.Has("b") {
		t.Fatal("derived Doc must have both keys")
	}
}

func TestToMapNestedStructures(t *testing.T) {
	inner := docval.New().Set("n", docval.Int(5))
	d := docval.New().
		Set("nested", docval.FromDoc(inner)).
		Set("list", docval.FromList([]docval.Scalar{docval.String("x"), docval.Null()}))

	m := d.ToMap()
	nested, ok := m["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", m["nested"])
	}
	if nested["n"] != int64(5) {
		t.Fatalf("got %v, want 5", nested["n"])
	}
	list, ok := m["list"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2-element list, got %v", m["list"])
	}
	if list[0] != "x" || list[1] != nil {
		t.Fatalf("unexpected list contents: %v", list)
	}
}
