package main

import (
	"encoding/json"
	"fmt"
	"os"

	tars "github.com/tars-go/tars"
)

// schemaFile is the on-disk JSON shape a compiled schema is loaded from.
// It mirrors FieldDescriptor one-for-one, with Kind spelled as a name
// instead of a numeric code so schema files stay readable by hand.
type schemaFile struct {
	Fields []struct {
		Tag     byte   `json:"tag"`
		Forced  bool   `json:"forced"`
		Type1   string `json:"type1"`
		Type2   string `json:"type2"`
		Type3   string `json:"type3"`
		Default int64  `json:"default"`
	} `json:"fields"`
	Names          []string `json:"names"`
	StringDefaults []string `json:"stringDefaults"`
}

func loadSchema(path string) (*tars.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var sf schemaFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}

	fields := make([]tars.FieldDescriptor, len(sf.Fields))
	for i, f := range sf.Fields {
		t1, err := parseKind(f.Type1)
		if err != nil {
			return nil, fmt.Errorf("row %d type1: %w", i, err)
		}
		t2, err := parseKind(f.Type2)
		if err != nil {
			return nil, fmt.Errorf("row %d type2: %w", i, err)
		}
		t3, err := parseKind(f.Type3)
		if err != nil {
			return nil, fmt.Errorf("row %d type3: %w", i, err)
		}
		fields[i] = tars.FieldDescriptor{
			Tag:     f.Tag,
			Forced:  f.Forced,
			Type1:   t1,
			Type2:   t2,
			Type3:   t3,
			Default: f.Default,
		}
	}

	return tars.CompileSchema(fields, sf.Names, sf.StringDefaults)
}

// parseKind accepts either a bare kind name ("i32", "string", "map",
// "list") or "struct:<row>" for a kind that addresses another row of the
// same schema by struct id (tars.TypeMax + row). An empty string decodes
// to KindBool, the zero Kind, for rows that leave type2/type3 unused.
func parseKind(s string) (tars.Kind, error) {
	switch s {
	case "", "bool":
		return tars.KindBool, nil
	case "i8":
		return tars.KindI8, nil
	case "u8":
		return tars.KindU8, nil
	case "i16":
		return tars.KindI16, nil
	case "u16":
		return tars.KindU16, nil
	case "i32":
		return tars.KindI32, nil
	case "u32":
		return tars.KindU32, nil
	case "i64":
		return tars.KindI64, nil
	case "f32":
		return tars.KindF32, nil
	case "f64":
		return tars.KindF64, nil
	case "string":
		return tars.KindString, nil
	case "map":
		return tars.KindMap, nil
	case "list":
		return tars.KindList, nil
	}

	var row int
	if _, err := fmt.Sscanf(s, "struct:%d", &row); err == nil {
		return tars.TypeMax + tars.Kind(row), nil
	}
	return 0, fmt.Errorf("unrecognized kind %q", s)
}
