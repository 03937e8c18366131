package tars

// This file implements operations 2–7 of the eight external operations of
// spec.md §6 (CompileSchema and Dump live in schema.go). Each
// top-level Encode* operation hands a struct/list/map body out to the
// caller without the outer StructBegin/StructEnd or container framing
// (no-wrap mode); the caller supplies that framing out of band, e.g. as
// part of a request envelope the host binding layer owns.

// EncodeStructTop encodes a struct identified by structID from value,
// omitting the outer StructBegin/StructEnd (spec.md §6 operation 2).
func EncodeStructTop(schema *Schema, structID Kind, value Value) ([]byte, error) {
	row, err := schema.StructRow(structID)
	if err != nil {
		return nil, err
	}

	buf := NewBufferFromPool()
	defer buf.ReturnToPool()

	if err := EncodeStruct(buf, schema, row, value, 0, true, true); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.Bytes))
	copy(out, buf.Bytes)
	return out, nil
}

// EncodeMapTop encodes a top-level map value, omitting the outer Map
// header (spec.md §6 operation 3).
func EncodeMapTop(schema *Schema, keyKind, valueKind Kind, value Value) ([]byte, error) {
	buf := NewBufferFromPool()
	defer buf.ReturnToPool()

	if err := EncodeMap(buf, schema, keyKind, valueKind, value, 0, true, true); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.Bytes))
	copy(out, buf.Bytes)
	return out, nil
}

// EncodeListTop encodes a top-level list value, omitting the outer List
// header (spec.md §6 operation 4).
func EncodeListTop(schema *Schema, elementKind Kind, value Value) ([]byte, error) {
	buf := NewBufferFromPool()
	defer buf.ReturnToPool()

	if err := EncodeList(buf, schema, elementKind, value, 0, true, true); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.Bytes))
	copy(out, buf.Bytes)
	return out, nil
}

// DecodeStructTop decodes a struct identified by structID from data, with
// no outer StructBegin/StructEnd expected (spec.md §6 operation 5).
func DecodeStructTop(schema *Schema, structID Kind, data []byte) (Value, error) {
	row, err := schema.StructRow(structID)
	if err != nil {
		return Value{}, err
	}
	cur := NewCursor(data)
	return DecodeStruct(&cur, schema, row, false)
}

// DecodeMapTop decodes a top-level map value from data, with no outer Map
// header expected (spec.md §6 operation 6).
func DecodeMapTop(schema *Schema, keyKind, valueKind Kind, data []byte) (Value, error) {
	cur := NewCursor(data)
	return DecodeMap(&cur, schema, keyKind, valueKind, false)
}

// DecodeListTop decodes a top-level list value from data, with no outer
// List header expected (spec.md §6 operation 7).
func DecodeListTop(schema *Schema, elementKind Kind, data []byte) (Value, error) {
	cur := NewCursor(data)
	return DecodeList(&cur, schema, elementKind, false)
}
