package tars

import (
	"errors"
	"testing"
)

func TestReadHeaderRoundTrip(t *testing.T) {
	buf := &Buffer{}
	buf.WriteHeader(3, WireChar)
	buf.WriteHeader(15, WireList)

	cur := NewCursor(buf.Bytes)

	hdr, atEnd, err := cur.ReadHeader()
	if err != nil || atEnd {
		t.Fatalf("unexpected: hdr=%v atEnd=%v err=%v", hdr, atEnd, err)
	}
	if hdr.Tag != 3 || hdr.Type != WireChar {
		t.Errorf("got %+v, want tag 3 Char", hdr)
	}

	hdr, atEnd, err = cur.ReadHeader()
	if err != nil || atEnd {
		t.Fatalf("unexpected: hdr=%v atEnd=%v err=%v", hdr, atEnd, err)
	}
	if hdr.Tag != 15 || hdr.Type != WireList {
		t.Errorf("got %+v, want tag 15 List", hdr)
	}

	_, atEnd, err = cur.ReadHeader()
	if err != nil {
		t.Fatalf("unexpected error at end: %v", err)
	}
	if !atEnd {
		t.Error("expected end-of-buffer signal")
	}
}

func TestReadHeaderTruncatedExtended(t *testing.T) {
	cur := NewCursor([]byte{0xF0}) // extended header missing tag byte
	_, atEnd, err := cur.ReadHeader()
	if atEnd {
		t.Fatal("should not report end-of-buffer for a dangling extended header")
	}
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func TestReadI64Widening(t *testing.T) {
	buf := &Buffer{}
	buf.WriteInt64(0, 1<<40)
	cur := NewCursor(buf.Bytes)

	hdr, _, err := cur.ReadHeader()
	if err != nil {
		t.Fatal(err)
	}
	v, err := cur.ReadI64(hdr.Type)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1<<40 {
		t.Errorf("ReadI64 = %d, want %d", v, int64(1)<<40)
	}
}

func TestReadStringBothForms(t *testing.T) {
	buf := &Buffer{}
	if err := buf.WriteString(0, "hi"); err != nil {
		t.Fatal(err)
	}
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	if err := buf.WriteString(1, string(long)); err != nil {
		t.Fatal(err)
	}

	cur := NewCursor(buf.Bytes)

	hdr, _, _ := cur.ReadHeader()
	s, err := cur.ReadString(hdr.Type)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hi" {
		t.Errorf("short form = %q, want %q", s, "hi")
	}

	hdr, _, _ = cur.ReadHeader()
	s, err = cur.ReadString(hdr.Type)
	if err != nil {
		t.Fatal(err)
	}
	if s != string(long) {
		t.Errorf("long form length = %d, want %d", len(s), len(long))
	}
}

func TestReadTruncated(t *testing.T) {
	cur := NewCursor([]byte{0x31, 0x00}) // Short header promising 2 payload bytes, only 1 present
	hdr, _, _ := cur.ReadHeader()
	_, err := cur.ReadI64(hdr.Type)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func TestUnreadHeaderRestoresCursor(t *testing.T) {
	buf := &Buffer{}
	buf.WriteHeader(3, WireChar)
	buf.Bytes = append(buf.Bytes, 0x7F)
	cur := NewCursor(buf.Bytes)

	hdr, _, err := cur.ReadHeader()
	if err != nil {
		t.Fatal(err)
	}
	cur.unreadHeader(hdr)

	hdr2, _, err := cur.ReadHeader()
	if err != nil {
		t.Fatal(err)
	}
	if hdr2 != hdr {
		t.Errorf("re-read header = %+v, want %+v", hdr2, hdr)
	}
}
