package tars

// EncodeList encodes an ordered sequence: a length prefix followed by
// each element, all framed under the element's outer tag 0 (spec.md §4.5
// "Encode list"). Per spec.md §9 ("Open question"), a forced empty list
// still emits its header and a zero length — the source's guard that
// skips forced-empty lists too is treated as a bug, not adopted here.
func EncodeList(buf *Buffer, schema *Schema, elementKind Kind, value Value, outerTag byte, forced, noWrap bool) error {
	var items []Value
	if value.IsAbsent() {
		if !forced {
			return nil
		}
	} else {
		var ok bool
		items, ok = value.AsList()
		if !ok {
			return invalidValuef("tag %d: expected list, got %s", outerTag, valueCategory(value))
		}
	}

	if len(items) == 0 && !forced {
		return nil
	}

	if !noWrap {
		buf.WriteHeader(outerTag, WireList)
	}
	buf.WriteInt64(0, int64(len(items)))

	for _, item := range items {
		if elementKind.IsStruct() {
			row, err := schema.StructRow(elementKind)
			if err != nil {
				return err
			}
			if err := EncodeStruct(buf, schema, row, item, 0, true, false); err != nil {
				return err
			}
			continue
		}
		if err := EncodeScalar(buf, elementKind, 0, true, item, 0, ""); err != nil {
			return err
		}
	}
	return nil
}

// DecodeList decodes a length-prefixed sequence of elements (spec.md §4.5
// "Decode list"). The container header itself (WireList) is assumed
// already consumed, or absent in no-wrap top-level mode; DecodeList
// starts directly at the length field.
func DecodeList(cur *Cursor, schema *Schema, elementKind Kind, missing bool) (Value, error) {
	if missing {
		return List(nil), nil
	}

	length, err := readLengthField(cur)
	if err != nil {
		return Value{}, err
	}

	items := make([]Value, 0, length)
	for i := int64(0); i < length; i++ {
		hdr, atEnd, err := cur.ReadHeader()
		if err != nil {
			return Value{}, err
		}
		if atEnd {
			return Value{}, truncatedf("list element %d/%d: missing header", i, length)
		}

		if elementKind.IsStruct() {
			if hdr.Type != WireStructBegin {
				return Value{}, typeMismatchf(hdr.Tag, "StructBegin", hdr.Type)
			}
			row, err := schema.StructRow(elementKind)
			if err != nil {
				return Value{}, err
			}
			item, err := DecodeStruct(cur, schema, row, false)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
			continue
		}

		if err := checkWireFamily(elementKind, hdr.Type); err != nil {
			return Value{}, err
		}
		item, err := DecodeScalar(cur, elementKind, hdr, false, 0, "")
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	return List(items), nil
}

// EncodeMap encodes an unordered key/value mapping as a length prefix
// followed by alternating key (tag 0) / value (tag 1) pairs (spec.md §4.5
// "Encode map"). The key kind must be scalar.
func EncodeMap(buf *Buffer, schema *Schema, keyKind, valueKind Kind, value Value, outerTag byte, forced, noWrap bool) error {
	if !keyKind.IsScalar() {
		return schemaErrorf("map key kind %s is not scalar", keyKind)
	}

	var entries []MapEntry
	if value.IsAbsent() {
		if !forced {
			return nil
		}
	} else {
		var ok bool
		entries, ok = value.AsMap()
		if !ok {
			return invalidValuef("tag %d: expected map, got %s", outerTag, valueCategory(value))
		}
	}

	if len(entries) == 0 && !forced {
		return nil
	}

	if !noWrap {
		buf.WriteHeader(outerTag, WireMap)
	}
	buf.WriteInt64(0, int64(len(entries)))

	for _, e := range entries {
		if err := EncodeScalar(buf, keyKind, 0, true, e.Key, 0, ""); err != nil {
			return err
		}
		if valueKind.IsStruct() {
			row, err := schema.StructRow(valueKind)
			if err != nil {
				return err
			}
			if err := EncodeStruct(buf, schema, row, e.Value, 1, true, false); err != nil {
				return err
			}
			continue
		}
		if err := EncodeScalar(buf, valueKind, 1, true, e.Value, 0, ""); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMap decodes a length-prefixed sequence of (key at tag 0, value at
// tag 1) pairs (spec.md §4.5 "Decode map"). Symmetric to DecodeList.
func DecodeMap(cur *Cursor, schema *Schema, keyKind, valueKind Kind, missing bool) (Value, error) {
	if !keyKind.IsScalar() {
		return Value{}, schemaErrorf("map key kind %s is not scalar", keyKind)
	}
	if missing {
		return Map(nil), nil
	}

	length, err := readLengthField(cur)
	if err != nil {
		return Value{}, err
	}

	entries := make([]MapEntry, 0, length)
	for i := int64(0); i < length; i++ {
		keyHdr, atEnd, err := cur.ReadHeader()
		if err != nil {
			return Value{}, err
		}
		if atEnd {
			return Value{}, truncatedf("map entry %d/%d: missing key header", i, length)
		}
		if keyHdr.Tag != 0 {
			return Value{}, typeMismatchf(keyHdr.Tag, "key at tag 0", keyHdr.Type)
		}
		if err := checkWireFamily(keyKind, keyHdr.Type); err != nil {
			return Value{}, err
		}
		key, err := DecodeScalar(cur, keyKind, keyHdr, false, 0, "")
		if err != nil {
			return Value{}, err
		}

		valHdr, atEnd, err := cur.ReadHeader()
		if err != nil {
			return Value{}, err
		}
		if atEnd {
			return Value{}, truncatedf("map entry %d/%d: missing value header", i, length)
		}
		if valHdr.Tag != 1 {
			return Value{}, typeMismatchf(valHdr.Tag, "value at tag 1", valHdr.Type)
		}

		var val Value
		if valueKind.IsStruct() {
			if valHdr.Type != WireStructBegin {
				return Value{}, typeMismatchf(valHdr.Tag, "StructBegin", valHdr.Type)
			}
			row, err := schema.StructRow(valueKind)
			if err != nil {
				return Value{}, err
			}
			val, err = DecodeStruct(cur, schema, row, false)
			if err != nil {
				return Value{}, err
			}
		} else {
			if err := checkWireFamily(valueKind, valHdr.Type); err != nil {
				return Value{}, err
			}
			val, err = DecodeScalar(cur, valueKind, valHdr, false, 0, "")
			if err != nil {
				return Value{}, err
			}
		}

		entries = append(entries, MapEntry{Key: key, Value: val})
	}

	return Map(entries), nil
}
