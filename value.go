package tars

// Value is the generic tagged container tree the codec encodes from and
// decodes into (spec.md §3 "Value tree"). It stands in for the host
// language binding layer's own keyed-container representation, which
// spec.md §1 treats as an external collaborator: callers translate their
// own structs/maps into a Value tree before calling Encode*, and back out
// of one after calling Decode*.
//
// The zero Value is Absent: present-but-zero/empty is always represented
// explicitly (Bool(false), Int(0), String("")), never by the zero Value.
type Value struct {
	tag    valueTag
	b      bool
	i      int64
	s      string
	list   []Value
	isList bool // disambiguates List from Map when len(mp)==0
	mp     []MapEntry
	strct  map[string]Value
}

type valueTag uint8

const (
	tagAbsent valueTag = iota
	tagBool
	tagInt
	tagString
	tagList
	tagMap
	tagStruct
)

// MapEntry is one key/value pair of a Map value. Order is preserved from
// the wire even though spec.md §3 calls map values "unordered" at the
// model level, so re-encoding a decoded map reproduces the same bytes.
type MapEntry struct {
	Key   Value
	Value Value
}

// Absent represents a field that was not supplied, distinct from a
// present zero/empty value (spec.md §3).
func Absent() Value { return Value{tag: tagAbsent} }

// IsAbsent reports whether v is the Absent value.
func (v Value) IsAbsent() bool { return v.tag == tagAbsent }

// Bool wraps a boolean scalar.
func Bool(b bool) Value { return Value{tag: tagBool, b: b} }

// Int wraps an integer scalar. All integer kinds (i8..u32, i64) share
// this single representation; range validation against the target kind
// happens in scalar.go.
func Int(i int64) Value { return Value{tag: tagInt, i: i} }

// String wraps a string/byte-string scalar.
func String(s string) Value { return Value{tag: tagString, s: s} }

// List wraps an ordered sequence of values.
func List(items []Value) Value { return Value{tag: tagList, list: items, isList: true} }

// Map wraps an unordered key/value mapping, represented as ordered pairs
// so re-encoding reproduces the original wire order.
func Map(entries []MapEntry) Value { return Value{tag: tagMap, mp: entries} }

// Struct wraps a keyed mapping from field name to child value.
func Struct(fields map[string]Value) Value { return Value{tag: tagStruct, strct: fields} }

// NewStruct returns an empty, mutable struct value ready for Set calls.
func NewStruct() Value { return Value{tag: tagStruct, strct: map[string]Value{}} }

// Set assigns a field by name on a struct value and returns the receiver,
// mirroring the fluent builder style of the document builder this value
// tree generalizes. Set on a non-struct Value is a no-op.
func (v Value) Set(name string, child Value) Value {
	if v.tag != tagStruct {
		return v
	}
	v.strct[name] = child
	return v
}

// Field looks up a field by name on a struct value. Returns Absent if v
// is not a struct or the field is not present.
func (v Value) Field(name string) Value {
	if v.tag != tagStruct || v.strct == nil {
		return Absent()
	}
	child, ok := v.strct[name]
	if !ok {
		return Absent()
	}
	return child
}

// AsBool returns the wrapped boolean and whether v actually holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.tag == tagBool }

// AsInt returns the wrapped integer and whether v actually holds one.
func (v Value) AsInt() (int64, bool) { return v.i, v.tag == tagInt }

// AsString returns the wrapped string and whether v actually holds one.
func (v Value) AsString() (string, bool) { return v.s, v.tag == tagString }

// AsList returns the wrapped sequence and whether v actually holds one.
func (v Value) AsList() ([]Value, bool) { return v.list, v.tag == tagList }

// AsMap returns the wrapped entries and whether v actually holds one.
func (v Value) AsMap() ([]MapEntry, bool) { return v.mp, v.tag == tagMap }

// AsStruct returns the wrapped field map and whether v actually holds one.
func (v Value) AsStruct() (map[string]Value, bool) { return v.strct, v.tag == tagStruct }

// IsList reports whether a container-tagged Value is a list rather than
// a map; both decode into the same underlying representation in some
// host bindings, so the codec attaches this marker explicitly rather
// than relying on a registry of per-container marker objects
// (spec.md §9 "Dynamic value model").
func (v Value) IsList() bool { return v.tag == tagList }

// Interface renders a Value tree as plain Go values (nil, bool, int64,
// string, []any, or map[string]any) suitable for JSON encoding or
// printing, for diagnostic tools that sit outside the host binding layer.
func (v Value) Interface() any {
	switch v.tag {
	case tagAbsent:
		return nil
	case tagBool:
		return v.b
	case tagInt:
		return v.i
	case tagString:
		return v.s
	case tagList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case tagMap:
		out := make(map[string]any, len(v.mp))
		for _, e := range v.mp {
			key, _ := e.Key.AsString()
			out[key] = e.Value.Interface()
		}
		return out
	case tagStruct:
		out := make(map[string]any, len(v.strct))
		for name, child := range v.strct {
			out[name] = child.Interface()
		}
		return out
	}
	return nil
}
