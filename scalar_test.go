package tars

import (
	"errors"
	"testing"
)

func encodeOneScalar(t *testing.T, kind Kind, tag byte, forced bool, value Value, defaultInt int64, defaultStr string) []byte {
	t.Helper()
	buf := &Buffer{}
	if err := EncodeScalar(buf, kind, tag, forced, value, defaultInt, defaultStr); err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	return buf.Bytes
}

func TestScalarRoundTripInt(t *testing.T) {
	b := encodeOneScalar(t, KindI32, 2, true, Int(300), 0, "")
	cur := NewCursor(b)
	hdr, _, err := cur.ReadHeader()
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeScalar(&cur, KindI32, hdr, false, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := got.AsInt()
	if v != 300 {
		t.Errorf("round trip = %d, want 300", v)
	}
}

func TestScalarElidesDefaultWhenNotForced(t *testing.T) {
	b := encodeOneScalar(t, KindI32, 2, false, Int(7), 7, "")
	if len(b) != 0 {
		t.Errorf("expected elision, got % x", b)
	}
}

func TestScalarForcedEmitsDefaultEvenWhenAbsent(t *testing.T) {
	b := encodeOneScalar(t, KindI32, 2, true, Absent(), 7, "")
	cur := NewCursor(b)
	hdr, _, _ := cur.ReadHeader()
	got, err := DecodeScalar(&cur, KindI32, hdr, false, 7, "")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := got.AsInt()
	if v != 7 {
		t.Errorf("forced default = %d, want 7", v)
	}
}

func TestScalarBoolElisionAgainstNonZeroDefault(t *testing.T) {
	// Default is "true" (defaultInt=1); encoding true, not forced, should elide.
	b := encodeOneScalar(t, KindBool, 0, false, Bool(true), 1, "")
	if len(b) != 0 {
		t.Errorf("expected elision against true default, got % x", b)
	}

	// Encoding false against a true default must NOT elide.
	b = encodeOneScalar(t, KindBool, 0, false, Bool(false), 1, "")
	if len(b) == 0 {
		t.Error("expected explicit encoding of false against a true default")
	}
}

func TestScalarRangeOverflow(t *testing.T) {
	buf := &Buffer{}
	err := EncodeScalar(buf, KindU8, 0, true, Int(256), 0, "")
	if !errors.Is(err, ErrRangeOverflow) {
		t.Errorf("err = %v, want ErrRangeOverflow", err)
	}
}

func TestScalarWrongCategory(t *testing.T) {
	buf := &Buffer{}
	err := EncodeScalar(buf, KindI32, 0, true, String("x"), 0, "")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
}

func TestScalarFloatUnsupported(t *testing.T) {
	buf := &Buffer{}
	err := EncodeScalar(buf, KindF64, 0, true, Int(1), 0, "")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}

	cur := NewCursor([]byte{0x0C})
	hdr, _, _ := cur.ReadHeader()
	_, err = DecodeScalar(&cur, KindF64, hdr, false, 0, "")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("decode err = %v, want ErrUnsupported", err)
	}
}

func TestDecodeScalarBoolOutsideRange(t *testing.T) {
	buf := &Buffer{}
	buf.WriteInt64(0, 2) // neither 0 nor 1
	cur := NewCursor(buf.Bytes)
	hdr, _, _ := cur.ReadHeader()
	_, err := DecodeScalar(&cur, KindBool, hdr, false, 0, "")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
}

func TestDecodeScalarFieldMissingMaterializesDefault(t *testing.T) {
	got, err := DecodeScalar(nil, KindString, Header{}, true, 0, "fallback")
	if err != nil {
		t.Fatal(err)
	}
	s, _ := got.AsString()
	if s != "fallback" {
		t.Errorf("missing-field default = %q, want %q", s, "fallback")
	}
}
