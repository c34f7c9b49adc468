// Package docval provides the output primitives used by the denormalizer:
// [Scalar], a tagged union over the value kinds a dictionary property can
// hold, and [Doc], an insertion-order-preserving string-keyed mapping.
//
// Both types are immutable after construction; mutation methods on Doc
// ([Doc.Set], [Doc.Delete]) return a new Doc and leave the receiver
// untouched. Consumers that serialize Docs
// (e.g. to JSON) depend on the preserved field order, so no operation here
// ever reorders existing keys.
package docval

import "math"

// Kind identifies which alternative of the Scalar tagged union is held.
type Kind uint8

const (
	// KindNull represents an explicit null, distinguishable from "absent".
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	// KindDoc is a recursive composite: a nested Doc.
	KindDoc
	// KindList is a recursive composite: an ordered list of Scalars.
	KindList
)

// Scalar is a tagged union over null, boolean, signed/unsigned integer,
// floating decimal, string, and recursive composite (Doc or list) values.
//
// The zero Scalar is KindNull, so a missing property naturally reads as
// null when constructed via zero values — but callers needing to
// distinguish "absent" from "explicitly null" must do so at the Doc
// level (via [Doc.Has]), not via the Scalar itself.
type Scalar struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	doc  Doc
	list []Scalar
}

// Null returns the null Scalar.
func Null() Scalar { return Scalar{kind: KindNull} }

// Bool wraps a boolean value.
func Bool(v bool) Scalar { return Scalar{kind: KindBool, b: v} }

// Int wraps a signed integer value.
func Int(v int64) Scalar { return Scalar{kind: KindInt, i: v} }

// Uint wraps an unsigned integer value.
func Uint(v uint64) Scalar { return Scalar{kind: KindUint, u: v} }

// Float wraps a floating decimal value.
func Float(v float64) Scalar { return Scalar{kind: KindFloat, f: v} }

// String wraps a string value.
func String(v string) Scalar { return Scalar{kind: KindString, s: v} }

// FromDoc wraps a nested Doc as a composite Scalar.
func FromDoc(d Doc) Scalar { return Scalar{kind: KindDoc, doc: d} }

// FromList wraps an ordered list of Scalars as a composite Scalar.
func FromList(v []Scalar) Scalar {
	cp := make([]Scalar, len(v))
	copy(cp, v)
	return Scalar{kind: KindList, list: cp}
}

// Kind reports which alternative is held.
func (s Scalar) Kind() Kind { return s.kind }

// IsNull reports whether this Scalar is the null alternative.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Bool returns the boolean value and whether the Scalar held one.
func (s Scalar) Bool() (bool, bool) { return s.b, s.kind == KindBool }

// Int returns the scalar as an int64, converting from any numeric kind
// when the conversion is exact (whole number, in range). Returns
// (0, false) for non-numeric kinds or lossy conversions.
func (s Scalar) Int() (int64, bool) {
	switch s.kind {
	case KindInt:
		return s.i, true
	case KindUint:
		if s.u > math.MaxInt64 {
			return 0, false
		}
		return int64(s.u), true
	case KindFloat:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) || s.f != math.Trunc(s.f) {
			return 0, false
		}
		if s.f < float64(math.MinInt64) || s.f > float64(math.MaxInt64) {
			return 0, false
		}
		return int64(s.f), true
	default:
		return 0, false
	}
}

// Uint returns the scalar as a uint64 under the same exactness rules as Int.
func (s Scalar) Uint() (uint64, bool) {
	switch s.kind {
	case KindUint:
		return s.u, true
	case KindInt:
		if s.i < 0 {
			return 0, false
		}
		return uint64(s.i), true
	case KindFloat:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) || s.f != math.Trunc(s.f) || s.f < 0 {
			return 0, false
		}
		if s.f > float64(math.MaxUint64) {
			return 0, false
		}
		return uint64(s.f), true
	default:
		return 0, false
	}
}

// Float returns the scalar as a float64, converting from int/uint. Integers
// whose magnitude exceeds 2^53 are rounded to the nearest float64.
func (s Scalar) Float() (float64, bool) {
	switch s.kind {
	case KindFloat:
		return s.f, true
	case KindInt:
		return float64(s.i), true
	case KindUint:
		return float64(s.u), true
	default:
		return 0, false
	}
}

// String returns the string value and whether the Scalar held one.
func (s Scalar) String() (string, bool) { return s.s, s.kind == KindString }

// Doc returns the nested Doc and whether the Scalar held one.
func (s Scalar) Doc() (Doc, bool) { return s.doc, s.kind == KindDoc }

// List returns the nested list and whether the Scalar held one. The
// returned slice is a defensive copy.
func (s Scalar) List() ([]Scalar, bool) {
	if s.kind != KindList {
		return nil, false
	}
	cp := make([]Scalar, len(s.list))
	copy(cp, s.list)
	return cp, true
}

// FromAny converts an arbitrary Go value (as typically decoded from JSON
// by encoding/json: nil, bool, float64, string, []any, map[string]any)
// into a Scalar. Unrecognized concrete types convert to null; callers
// should pre-normalize unusual types before calling FromAny.
func FromAny(v any) Scalar {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case map[string]any:
		d := New()
		for k, v := range x {
			d = d.Set(k, FromAny(v))
		}
		return FromDoc(d)
	case []any:
		list := make([]Scalar, len(x))
		for i, e := range x {
			list[i] = FromAny(e)
		}
		return FromList(list)
	default:
		return Null()
	}
}
