package tars

// EncodeStruct walks the schema rows belonging to one struct, in
// ascending tag order, and encodes each field from value (spec.md §4.4
// "Encode struct"). When noWrap is true the outer StructBegin/StructEnd
// framing is omitted, for the top-level entry points of spec.md §6.
func EncodeStruct(buf *Buffer, schema *Schema, row int, value Value, outerTag byte, forced, noWrap bool) error {
	if value.IsAbsent() {
		if !forced {
			return nil
		}
		value = Absent() // treated as an empty struct: every field reads as absent below
	}

	if row < 0 || row >= schema.Len() || schema.Row(row).Tag != 0 {
		return schemaErrorf("row %d does not start a struct", row)
	}

	if !noWrap {
		buf.WriteHeader(outerTag, WireStructBegin)
	}

	end := schema.structEnd(row)
	for i := row; i < end; i++ {
		f := schema.Row(i)
		name := schema.Name(i)
		child := value.Field(name)

		var err error
		switch {
		case f.Type1 == KindList:
			err = EncodeList(buf, schema, f.Type2, child, f.Tag, f.Forced, false)

		case f.Type1 == KindMap:
			err = EncodeMap(buf, schema, f.Type2, f.Type3, child, f.Tag, f.Forced, false)

		case f.Type1.IsStruct():
			var structRow int
			structRow, err = schema.StructRow(f.Type1)
			if err == nil {
				err = EncodeStruct(buf, schema, structRow, child, f.Tag, f.Forced, false)
			}

		default:
			strDefault := ""
			if f.Type1 == KindString {
				strDefault = schema.StringDefault(f.Default)
			}
			err = EncodeScalar(buf, f.Type1, f.Tag, f.Forced, child, f.Default, strDefault)
		}
		if err != nil {
			return err
		}
	}

	if !noWrap {
		buf.WriteHeader(0, WireStructEnd)
	}
	return nil
}

// DecodeStruct walks the schema rows belonging to one struct, in
// ascending tag order, reconciling the wire tag stream against the
// schema to drive missing-field defaulting (spec.md §4.4 "Decode
// struct"). missing is true when the caller already knows this whole
// struct has no wire representation (e.g. the enclosing field was
// reported missing).
func DecodeStruct(cur *Cursor, schema *Schema, row int, missing bool) (Value, error) {
	if row < 0 || row >= schema.Len() || schema.Row(row).Tag != 0 {
		return Value{}, schemaErrorf("row %d does not start a struct", row)
	}

	out := NewStruct()
	end := schema.structEnd(row)
	sawStructEnd := false

	for i := row; i < end; i++ {
		f := schema.Row(i)
		name := schema.Name(i)

		fieldMissing := missing
		var hdr Header

		if !fieldMissing {
			h, atEnd, err := cur.ReadHeader()
			if err != nil {
				return Value{}, err
			}
			switch {
			case atEnd:
				fieldMissing = true
				missing = true

			case h.Type == WireStructEnd:
				fieldMissing = true
				missing = true
				sawStructEnd = true

			case h.Tag > f.Tag:
				fieldMissing = true
				cur.unreadHeader(h)

			case h.Tag == f.Tag:
				if err := checkWireFamily(f.Type1, h.Type); err != nil {
					return Value{}, err
				}
				hdr = h

			default: // h.Tag < f.Tag
				return Value{}, disorderedFieldf(h.Tag, f.Tag)
			}
		}

		var child Value
		var err error
		switch {
		case f.Type1 == KindList:
			child, err = DecodeList(cur, schema, f.Type2, fieldMissing)

		case f.Type1 == KindMap:
			child, err = DecodeMap(cur, schema, f.Type2, f.Type3, fieldMissing)

		case f.Type1.IsStruct():
			var structRow int
			structRow, err = schema.StructRow(f.Type1)
			if err == nil {
				child, err = DecodeStruct(cur, schema, structRow, fieldMissing)
			}

		default:
			strDefault := ""
			if f.Type1 == KindString {
				strDefault = schema.StringDefault(f.Default)
			}
			child, err = DecodeScalar(cur, f.Type1, hdr, fieldMissing, f.Default, strDefault)
		}
		if err != nil {
			return Value{}, err
		}
		out = out.Set(name, child)
	}

	// A struct decoded as missing owns no wire bytes, so it drains nothing;
	// otherwise drain unknown trailing fields and the closing StructEnd.
	if !sawStructEnd && !missing {
		if err := SkipFields(cur, 255); err != nil {
			return Value{}, err
		}
	}

	return out, nil
}

// checkWireFamily validates that a wire header's type belongs to the
// family a schema kind accepts (spec.md §4.4 step c).
func checkWireFamily(kind Kind, wt WireType) error {
	switch {
	case kind == KindMap:
		if wt != WireMap {
			return typeMismatchf(0, "Map", wt)
		}
	case kind == KindList:
		if wt != WireList {
			return typeMismatchf(0, "List", wt)
		}
	case kind.IsStruct():
		if wt != WireStructBegin {
			return typeMismatchf(0, "StructBegin", wt)
		}
	case kind == KindString:
		if wt != WireString1 && wt != WireString4 {
			return typeMismatchf(0, "String1 or String4", wt)
		}
	default: // bool, numeric kinds
		switch wt {
		case WireZeroTag, WireChar, WireShort, WireInt32, WireInt64:
		default:
			return typeMismatchf(0, "integer wire type", wt)
		}
	}
	return nil
}
