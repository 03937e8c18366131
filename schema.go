package tars

import (
	"fmt"
	"strings"
)

// FieldDescriptor is one row of a compiled schema's flat field table
// (spec.md §3 "Compiled schema"). Type2/Type3 are only meaningful for
// list (Type2 = element kind) and map (Type2 = key kind, Type3 = value
// kind) rows; Default holds a numeric bit-pattern for numeric/bool kinds
// or a 1-based handle into the schema's string-default table for string
// kinds (0 means "no default", i.e. the empty string).
type FieldDescriptor struct {
	Tag     byte
	Forced  bool
	Type1   Kind
	Type2   Kind
	Type3   Kind
	Default int64
}

// Schema is a read-only, flat table of field descriptors plus the
// auxiliary name and string-default side tables produced once by the
// external schema compiler (spec.md §2 component 6, §9 "Schema layout").
// It is immutable after CompileSchema returns and safe to share across
// concurrent Encode/Decode calls (spec.md §5).
type Schema struct {
	rows           []FieldDescriptor
	names          []string
	stringDefaults []string
}

// CompileSchema builds a read-only Schema from an ordered field table and
// its parallel name table (spec.md §6 operation 1). names must have one
// entry per row; stringDefaults is indexed by the 1-based handles stored
// in string-kind rows' Default field. Unlike the source this keeps names
// and string defaults as two distinct tables rather than one auxiliary
// container addressed by handle arithmetic (spec.md §9 "Host-binding side
// table").
func CompileSchema(fields []FieldDescriptor, names []string, stringDefaults []string) (*Schema, error) {
	if len(names) != len(fields) {
		return nil, schemaErrorf("name table has %d entries, field table has %d rows", len(names), len(fields))
	}
	if len(fields) == 0 {
		return nil, schemaErrorf("schema has no rows")
	}
	if fields[0].Tag != 0 {
		return nil, schemaErrorf("row 0 must start a struct (tag 0), got tag %d", fields[0].Tag)
	}

	for i, f := range fields {
		switch {
		case f.Type1 <= KindString, f.Type1 == KindMap, f.Type1 == KindList, f.Type1.IsStruct():
			// recognized kind
		default:
			return nil, schemaErrorf("row %d: unknown primary kind %d", i, f.Type1)
		}
		if f.Type1 == KindMap && !f.Type2.IsScalar() {
			return nil, schemaErrorf("row %d: map key kind %s is not scalar", i, f.Type2)
		}
	}

	return &Schema{rows: fields, names: names, stringDefaults: stringDefaults}, nil
}

// Len returns the number of rows in the field table.
func (s *Schema) Len() int { return len(s.rows) }

// Row returns the field descriptor at the given row index.
func (s *Schema) Row(i int) FieldDescriptor { return s.rows[i] }

// Name returns the field name of the given row index.
func (s *Schema) Name(i int) string { return s.names[i] }

// StringDefault resolves a string-kind row's Default handle to its
// interned default string. Handle 0 means "no default", i.e. "".
func (s *Schema) StringDefault(handle int64) string {
	if handle == 0 {
		return ""
	}
	idx := int(handle) - 1
	if idx < 0 || idx >= len(s.stringDefaults) {
		return ""
	}
	return s.stringDefaults[idx]
}

// StructRow validates a struct id and returns the row index it
// addresses: id - TypeMax must be a valid row index, and that row's tag
// must be 0 (spec.md §3 "Struct ids address rows").
func (s *Schema) StructRow(id Kind) (int, error) {
	row := id.StructRow()
	if row < 0 || row >= len(s.rows) {
		return 0, schemaErrorf("struct id %d maps to row %d, out of range for %d-row schema", id, row, len(s.rows))
	}
	if s.rows[row].Tag != 0 {
		return 0, schemaErrorf("struct id %d maps to row %d, which does not start a struct (tag %d)", id, row, s.rows[row].Tag)
	}
	return row, nil
}

// structEnd returns the exclusive upper bound of the contiguous row span
// belonging to the struct starting at row start: the next row with
// tag 0, or the end of the table (spec.md §3 "Structural invariants").
func (s *Schema) structEnd(start int) int {
	for i := start + 1; i < len(s.rows); i++ {
		if s.rows[i].Tag == 0 {
			return i
		}
	}
	return len(s.rows)
}

// RowDump is one line of a schema's diagnostic dump (spec.md §6
// operation 8).
type RowDump struct {
	Tag       byte
	Name      string
	Requires  string
	Type1     Kind
	Type2     Kind
	Type3     Kind
}

// DumpRows renders every row as a structured RowDump, in field-table
// order.
func (s *Schema) DumpRows() []RowDump {
	out := make([]RowDump, len(s.rows))
	for i, f := range s.rows {
		requires := "optional"
		if f.Forced {
			requires = "require"
		}
		out[i] = RowDump{
			Tag:      f.Tag,
			Name:     s.names[i],
			Requires: requires,
			Type1:    f.Type1,
			Type2:    f.Type2,
			Type3:    f.Type3,
		}
	}
	return out
}

// Dump renders the schema as tab-separated diagnostic text:
// "[tag]:name\trequire|optional\ttype1\ttype2\ttype3" per row
// (spec.md §6 operation 8).
func (s *Schema) Dump() string {
	var b strings.Builder
	for _, r := range s.DumpRows() {
		fmt.Fprintf(&b, "[%d]:%s\t%s\t%s\t%s\t%s\n", r.Tag, r.Name, r.Requires, r.Type1, r.Type2, r.Type3)
	}
	return b.String()
}
