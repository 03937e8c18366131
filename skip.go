package tars

// SkipFields advances the cursor past up to n top-level fields, recursing
// into nested structs/lists/maps, and is used to drop unknown trailing
// fields the schema doesn't know about (spec.md §4.3). It stops early,
// having consumed the StructEnd byte, if one is encountered before n
// fields have been skipped.
func SkipFields(cur *Cursor, n int) error {
	for i := 0; i < n; i++ {
		hdr, atEnd, err := cur.ReadHeader()
		if err != nil {
			return err
		}
		if atEnd {
			return nil
		}
		if hdr.Type == WireStructEnd {
			return nil
		}
		if err := skipOne(cur, hdr); err != nil {
			return err
		}
	}
	return nil
}

// skipOne skips the payload of a single field whose header has already
// been consumed.
func skipOne(cur *Cursor, hdr Header) error {
	switch hdr.Type {
	case WireZeroTag:
		return nil

	case WireChar:
		return cur.Skip(1)
	case WireShort:
		return cur.Skip(2)
	case WireInt32, WireFloat:
		return cur.Skip(4)
	case WireInt64, WireDouble:
		return cur.Skip(8)

	case WireString1:
		b, err := cur.Read(1)
		if err != nil {
			return err
		}
		return cur.Skip(int(b[0]))

	case WireString4:
		b, err := cur.Read(4)
		if err != nil {
			return err
		}
		return cur.Skip(int(beUint32(b)))

	case WireMap:
		length, err := readLengthField(cur)
		if err != nil {
			return err
		}
		for i := int64(0); i < 2*length; i++ {
			if err := SkipFields(cur, 1); err != nil {
				return err
			}
		}
		return nil

	case WireList:
		length, err := readLengthField(cur)
		if err != nil {
			return err
		}
		for i := int64(0); i < length; i++ {
			if err := SkipFields(cur, 1); err != nil {
				return err
			}
		}
		return nil

	case WireStructBegin:
		return SkipFields(cur, 256)

	case WireSimpleList:
		return unsupportedf("SimpleList decode is not supported")
	}

	return typeMismatchf(hdr.Tag, "skippable field", hdr.Type)
}

// readLengthField reads the tag-0 length header inside a Map/List body
// and widens it to an int64 (spec.md §4.3: "read an Int32 length header").
func readLengthField(cur *Cursor) (int64, error) {
	hdr, atEnd, err := cur.ReadHeader()
	if err != nil {
		return 0, err
	}
	if atEnd {
		return 0, truncatedf("expected container length header, reached end of buffer")
	}
	return cur.ReadI64(hdr.Type)
}
