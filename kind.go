package tars

// Kind is the schema-level logical type of a field. It is distinct from
// WireType: a single Kind may be carried by several different wire types
// over the life of a value (e.g. an i32 Kind might arrive as a ZeroTag,
// a Char, a Short or an Int32 on the wire, depending on its value).
type Kind uint8

const (
	KindBool Kind = iota
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindF32
	KindF64
	KindString
	KindMap
	KindList
	KindStruct

	// TypeMax is the boundary between primitive/container kinds and
	// struct-id codes: any kind value >= TypeMax addresses a row in the
	// schema's field table via (kind - TypeMax).
	TypeMax Kind = 14
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI8:
		return "i8"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	}
	if k >= TypeMax {
		return "struct"
	}
	return "invalid"
}

// IsScalar reports whether k is a plain scalar (bool, integer width, or
// string) as opposed to a container or struct. Map keys are restricted to
// scalar kinds (spec.md §3: "Map keys must be a scalar kind (<= string)").
func (k Kind) IsScalar() bool {
	return k <= KindString
}

// IsStruct reports whether k addresses a row in the schema's field table.
func (k Kind) IsStruct() bool {
	return k >= TypeMax
}

// StructRow returns the field-table row index a struct Kind addresses.
func (k Kind) StructRow() int {
	return int(k) - int(TypeMax)
}

// IsFloat reports whether k is one of the two float kinds, which the
// codec recognizes in the schema but rejects on both encode and decode
// (spec.md §2 component 2, §4.2, §9 "Float support").
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// WireType is the 4-bit on-wire payload discriminator carried in the low
// nibble of a field header. It is independent of Kind: the dispatcher
// decides which WireType a Kind is allowed to arrive as.
type WireType uint8

const (
	WireChar        WireType = 0
	WireShort       WireType = 1
	WireInt32       WireType = 2
	WireInt64       WireType = 3
	WireFloat       WireType = 4
	WireDouble      WireType = 5
	WireString1     WireType = 6
	WireString4     WireType = 7
	WireMap         WireType = 8
	WireList        WireType = 9
	WireStructBegin WireType = 10
	WireStructEnd   WireType = 11
	WireZeroTag     WireType = 12
	WireSimpleList  WireType = 13
)

func (w WireType) String() string {
	switch w {
	case WireChar:
		return "Char"
	case WireShort:
		return "Short"
	case WireInt32:
		return "Int32"
	case WireInt64:
		return "Int64"
	case WireFloat:
		return "Float"
	case WireDouble:
		return "Double"
	case WireString1:
		return "String1"
	case WireString4:
		return "String4"
	case WireMap:
		return "Map"
	case WireList:
		return "List"
	case WireStructBegin:
		return "StructBegin"
	case WireStructEnd:
		return "StructEnd"
	case WireZeroTag:
		return "ZeroTag"
	case WireSimpleList:
		return "SimpleList"
	}
	return "invalid WireType"
}

// MaxStrLen bounds string payload length on encode (spec.md §4.1,
// "write_string"). Decode imposes no explicit cap beyond buffer
// availability (spec.md §5).
const MaxStrLen = 100 * 1024 * 1024
