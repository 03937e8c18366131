package tars

import (
	"encoding/binary"
	"sync"
)

// Buffer accumulates encoded TARS bytes. Supports only append operations,
// growing as needed; callers drain Bytes when the encode call completes.
type Buffer struct {
	Bytes []byte
}

var bufferPool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// NewBufferFromPool obtains a reset Buffer from the pool. Call
// ReturnToPool when finished with it.
func NewBufferFromPool() *Buffer {
	b := bufferPool.Get().(*Buffer)
	b.Reset()
	return b
}

// Reset clears the buffer contents but keeps the underlying array.
func (b *Buffer) Reset() {
	b.Bytes = b.Bytes[:0]
}

// ReturnToPool releases the buffer back to the pool. Using the buffer
// after this call is undefined behavior.
func (b *Buffer) ReturnToPool() {
	bufferPool.Put(b)
}

// WriteHeader appends a field header: one byte if tag fits in 4 bits,
// otherwise an extended two-byte header (spec.md §4.1 write_header).
func (b *Buffer) WriteHeader(tag byte, wt WireType) {
	if tag < 15 {
		b.Bytes = append(b.Bytes, (tag<<4)|byte(wt))
		return
	}
	b.Bytes = append(b.Bytes, 0xF0|byte(wt), tag)
}

// WriteInt64 appends a tagged signed integer using the size-compaction
// downcast chain: i64 -> i32 -> i16 -> i8, stopping as soon as the value
// fits, with 0 collapsing to a header-only ZeroTag (spec.md §4.1).
func (b *Buffer) WriteInt64(tag byte, v int64) {
	if int64(int32(v)) == v {
		b.writeInt32(tag, int32(v))
		return
	}
	b.WriteHeader(tag, WireInt64)
	b.appendBE64(uint64(v))
}

func (b *Buffer) writeInt32(tag byte, v int32) {
	if int32(int16(v)) == v {
		b.writeInt16(tag, int16(v))
		return
	}
	b.WriteHeader(tag, WireInt32)
	b.appendBE32(uint32(v))
}

func (b *Buffer) writeInt16(tag byte, v int16) {
	if int16(int8(v)) == v {
		b.writeInt8(tag, int8(v))
		return
	}
	b.WriteHeader(tag, WireShort)
	b.appendBE16(uint16(v))
}

func (b *Buffer) writeInt8(tag byte, v int8) {
	if v == 0 {
		b.WriteHeader(tag, WireZeroTag)
		return
	}
	b.WriteHeader(tag, WireChar)
	b.Bytes = append(b.Bytes, byte(v))
}

// WriteUint8/16/32 promote an unsigned value to the next-larger signed width
// so its full positive range fits, then runs the same downcast chain
// (spec.md §4.1, "Unsigned logical kinds are written by promoting...").
func (b *Buffer) WriteUint8(tag byte, v uint8)   { b.writeInt16(tag, int16(v)) }
func (b *Buffer) WriteUint16(tag byte, v uint16) { b.writeInt32(tag, int32(v)) }
func (b *Buffer) WriteUint32(tag byte, v uint32) { b.WriteInt64(tag, int64(v)) }

// WriteBool appends a tagged boolean: ZeroTag for false, Char(1) for true.
func (b *Buffer) WriteBool(tag byte, v bool) {
	if v {
		b.writeInt8(tag, 1)
		return
	}
	b.WriteHeader(tag, WireZeroTag)
}

// WriteString appends a tagged, length-prefixed string using the short
// (1-byte length) or long (4-byte length) form, and rejects payloads
// longer than MaxStrLen (spec.md §4.1 write_string).
func (b *Buffer) WriteString(tag byte, s string) error {
	n := len(s)
	switch {
	case n <= 0xFF:
		b.WriteHeader(tag, WireString1)
		b.Bytes = append(b.Bytes, byte(n))
	case n <= MaxStrLen:
		b.WriteHeader(tag, WireString4)
		b.appendBE32(uint32(n))
	default:
		return invalidValuef("string of length %d exceeds MaxStrLen (%d)", n, MaxStrLen)
	}
	b.Bytes = append(b.Bytes, s...)
	return nil
}

func (b *Buffer) appendBE16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
}

func (b *Buffer) appendBE32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
}

func (b *Buffer) appendBE64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.Bytes = append(b.Bytes, tmp[:]...)
}
