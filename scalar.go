package tars

// scalarBounds holds the inclusive signed/unsigned range for each numeric
// Kind, used to validate both encode-time host values and decode-time
// widened wire values (spec.md §4.2).
var scalarBounds = map[Kind][2]int64{
	KindI8:  {-128, 127},
	KindU8:  {0, 255},
	KindI16: {-32768, 32767},
	KindU16: {0, 65535},
	KindI32: {-2147483648, 2147483647},
	KindU32: {0, 4294967295},
	KindI64: {-1 << 63, 1<<63 - 1},
}

func checkRange(kind Kind, v int64) error {
	bounds, ok := scalarBounds[kind]
	if !ok {
		return nil
	}
	if v < bounds[0] || v > bounds[1] {
		return rangeOverflowf("value %d out of range for %s [%d, %d]", v, kind, bounds[0], bounds[1])
	}
	return nil
}

// EncodeScalar encodes one scalar field, applying the absent/forced and
// default-elision rules of spec.md §4.2. defaultInt is the schema's
// numeric default bit-pattern; defaultStr is the schema's interned
// string default (ignored for numeric kinds).
func EncodeScalar(buf *Buffer, kind Kind, tag byte, forced bool, value Value, defaultInt int64, defaultStr string) error {
	if kind.IsFloat() {
		return unsupportedf("kind %s not supported on encode", kind)
	}

	if value.IsAbsent() {
		if !forced {
			return nil
		}
		return writeScalarRaw(buf, kind, tag, defaultInt, defaultStr)
	}

	switch kind {
	case KindBool:
		b, ok := value.AsBool()
		if !ok {
			return invalidValuef("tag %d: expected bool, got %s", tag, valueCategory(value))
		}
		if !forced && b == (defaultInt != 0) {
			return nil
		}
		buf.WriteBool(tag, b)
		return nil

	case KindString:
		s, ok := value.AsString()
		if !ok {
			return invalidValuef("tag %d: expected string, got %s", tag, valueCategory(value))
		}
		if !forced && s == defaultStr {
			return nil
		}
		return buf.WriteString(tag, s)

	default:
		i, ok := value.AsInt()
		if !ok {
			return invalidValuef("tag %d: expected integer, got %s", tag, valueCategory(value))
		}
		if err := checkRange(kind, i); err != nil {
			return err
		}
		if !forced && i == defaultInt {
			return nil
		}
		writeScalarInt(buf, kind, tag, i)
		return nil
	}
}

// writeScalarRaw emits the schema default for a forced-but-absent field.
func writeScalarRaw(buf *Buffer, kind Kind, tag byte, defaultInt int64, defaultStr string) error {
	switch kind {
	case KindBool:
		buf.WriteBool(tag, defaultInt != 0)
		return nil
	case KindString:
		return buf.WriteString(tag, defaultStr)
	default:
		writeScalarInt(buf, kind, tag, defaultInt)
		return nil
	}
}

func writeScalarInt(buf *Buffer, kind Kind, tag byte, v int64) {
	switch kind {
	case KindU8:
		buf.WriteUint8(tag, uint8(v))
	case KindU16:
		buf.WriteUint16(tag, uint16(v))
	case KindU32:
		buf.WriteUint32(tag, uint32(v))
	default: // i8, i16, i32, i64
		buf.WriteInt64(tag, v)
	}
}

func valueCategory(v Value) string {
	switch {
	case v.IsAbsent():
		return "absent"
	case v.IsList():
		return "list"
	default:
		_, isMap := v.AsMap()
		if isMap {
			return "map"
		}
		_, isStruct := v.AsStruct()
		if isStruct {
			return "struct"
		}
		return "scalar of wrong category"
	}
}

// DecodeScalar decodes one scalar field. fieldMissing is true when the
// dispatcher determined this field has no wire representation (end of
// struct reached, or a later tag arrived); in that case header is unused
// and the schema default is materialized instead (spec.md §4.2).
func DecodeScalar(cur *Cursor, kind Kind, header Header, fieldMissing bool, defaultInt int64, defaultStr string) (Value, error) {
	if kind.IsFloat() {
		return Value{}, unsupportedf("kind %s not supported on decode", kind)
	}

	if fieldMissing {
		return materializeDefault(kind, defaultInt, defaultStr), nil
	}

	switch kind {
	case KindBool:
		i, err := cur.ReadI64(header.Type)
		if err != nil {
			return Value{}, err
		}
		if i != 0 && i != 1 {
			return Value{}, invalidValuef("tag %d: bool value %d outside {0,1}", header.Tag, i)
		}
		return Bool(i == 1), nil

	case KindString:
		s, err := cur.ReadString(header.Type)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil

	default:
		i, err := cur.ReadI64(header.Type)
		if err != nil {
			return Value{}, err
		}
		if err := checkRange(kind, i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	}
}

func materializeDefault(kind Kind, defaultInt int64, defaultStr string) Value {
	switch kind {
	case KindBool:
		return Bool(defaultInt != 0)
	case KindString:
		return String(defaultStr)
	default:
		return Int(defaultInt)
	}
}
