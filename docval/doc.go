package docval

// Doc is an ordered mapping from string key to [Scalar], preserving
// insertion order. Consumers depend on stable field ordering when a Doc
// is serialized, so Set never reorders an existing key and always
// appends new keys at the end.
//
// The zero Doc is a valid, empty Doc. Doc is an immutable value type:
// [Doc.Set] and [Doc.Delete] return a new Doc, leaving the receiver
// untouched, so a Doc can be freely shared across goroutines once built.
type Doc struct {
	keys   []string
	values map[string]Scalar
}

// New returns an empty Doc.
func New() Doc {
	return Doc{}
}

// Len returns the number of keys in the Doc.
func (d Doc) Len() int {
	return len(d.keys)
}

// Has reports whether key is present (distinguishing "absent" from a
// present key holding an explicit null Scalar).
func (d Doc) Has(key string) bool {
	if d.values == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (d Doc) Get(key string) (Scalar, bool) {
	if d.values == nil {
		return Scalar{}, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Set returns a new Doc with key bound to value. If key already exists,
// its position in iteration order is preserved and only the value is
// replaced. If key is new, it is appended after all existing keys.
func (d Doc) Set(key string, value Scalar) Doc {
	if d.values == nil {
		return Doc{
			keys:   []string{key},
			values: map[string]Scalar{key: value},
		}
	}
	if _, exists := d.values[key]; exists {
		values := make(map[string]Scalar, len(d.values))
		for k, v := range d.values {
			values[k] = v
		}
		values[key] = value
		return Doc{keys: d.keys, values: values}
	}

	keys := make([]string, len(d.keys), len(d.keys)+1)
	copy(keys, d.keys)
	keys = append(keys, key)

	values := make(map[string]Scalar, len(d.values)+1)
	for k, v := range d.values {
		values[k] = v
	}
	values[key] = value

	return Doc{keys: keys, values: values}
}

// Delete returns a new Doc with key removed, if present.
func (d Doc) Delete(key string) Doc {
	if d.values == nil {
		return d
	}
	if _, ok := d.values[key]; !ok {
		return d
	}
	keys := make([]string, 0, len(d.keys)-1)
	for _, k := range d.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	values := make(map[string]Scalar, len(d.values)-1)
	for k, v := range d.values {
		if k != key {
			values[k] = v
		}
	}
	return Doc{keys: keys, values: values}
}

// Keys returns the keys in insertion order. The returned slice is a
// defensive copy.
func (d Doc) Keys() []string {
	cp := make([]string, len(d.keys))
	copy(cp, d.keys)
	return cp
}

// Range calls fn for each key/value pair in insertion order, stopping
// early if fn returns false.
func (d Doc) Range(fn func(key string, value Scalar) bool) {
	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			return
		}
	}
}

// ToMap renders the Doc as a plain map[string]any suitable for
// encoding/json, preserving nested Docs and lists recursively. Because
// Go's encoding/json does not honor map iteration order, callers that
// need order-stable JSON output should marshal via an ordered encoder;
// ToMap is provided for consumers that only need the value shape.
func (d Doc) ToMap() map[string]any {
	out := make(map[string]any, len(d.keys))
	d.Range(func(key string, value Scalar) bool {
		out[key] = scalarToAny(value)
		return true
	})
	return out
}

func scalarToAny(s Scalar) any {
	switch s.Kind() {
	case KindNull:
		return nil
	case KindBool:
		v, _ := s.Bool()
		return v
	case KindInt:
		v, _ := s.Int()
		return v
	case KindUint:
		v, _ := s.Uint()
		return v
	case KindFloat:
		v, _ := s.Float()
		return v
	case KindString:
		v, _ := s.String()
		return v
	case KindDoc:
		v, _ := s.Doc()
		return v.ToMap()
	case KindList:
		v, _ := s.List()
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalarToAny(e)
		}
		return out
	default:
		return nil
	}
}
