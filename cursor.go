package tars

import "encoding/binary"

func beUint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// Header is a decoded field header: the schema tag and the on-wire type
// discriminator (spec.md §3 "Wire header").
type Header struct {
	Tag  byte
	Type WireType
}

// Cursor is a read-only walk over a decode buffer. It never retains a
// reference beyond the call that owns it (spec.md §5).
type Cursor struct {
	bytes []byte
	pos   int
}

// NewCursor wraps a caller-supplied byte slice for decoding.
func NewCursor(b []byte) Cursor {
	return Cursor{bytes: b}
}

// BytesLeft reports the number of unread bytes.
func (c *Cursor) BytesLeft() int {
	return len(c.bytes) - c.pos
}

// Remaining returns all unread bytes without advancing the cursor.
func (c *Cursor) Remaining() []byte {
	return c.bytes[c.pos:]
}

// Pos returns the current read offset, chiefly for error messages.
func (c *Cursor) Pos() int {
	return c.pos
}

// ReadHeader decodes the next field header (spec.md §4.1 read_header).
// atEnd is true, with a nil error, when the cursor has been fully
// consumed: this is the distinct end-of-buffer signal the dispatcher
// uses to detect the end of a struct, not an error condition. A single
// trailing byte that claims an extended header but has no second byte
// to back it is a genuine Truncated error.
func (c *Cursor) ReadHeader() (hdr Header, atEnd bool, err error) {
	if c.pos >= len(c.bytes) {
		return Header{}, true, nil
	}

	b0 := c.bytes[c.pos]
	if b0>>4 == 0xF {
		if c.pos+1 >= len(c.bytes) {
			return Header{}, false, truncatedf("extended header at offset %d missing tag byte", c.pos)
		}
		hdr = Header{Tag: c.bytes[c.pos+1], Type: WireType(b0 & 0x0F)}
		c.pos += 2
		return hdr, false, nil
	}

	hdr = Header{Tag: b0 >> 4, Type: WireType(b0 & 0x0F)}
	c.pos++
	return hdr, false, nil
}

// unreadHeader rewinds the cursor by the width of a previously-read
// header, so the next ReadHeader call reproduces it. Used by the
// dispatcher when a wire tag belongs to a later schema row than the one
// currently being considered.
func (c *Cursor) unreadHeader(hdr Header) {
	if hdr.Tag < 15 {
		c.pos--
		return
	}
	c.pos -= 2
}

// Read consumes and returns the next n bytes.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.bytes) {
		return nil, truncatedf("need %d bytes at offset %d, have %d", n, c.pos, c.BytesLeft())
	}
	b := c.bytes[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Read(n)
	return err
}

// ReadI64 widens any smaller wire integer into a signed 64-bit value,
// sign-extending as needed (spec.md §4.1 read_i64). ZeroTag yields 0 with
// no payload consumed.
func (c *Cursor) ReadI64(wt WireType) (int64, error) {
	switch wt {
	case WireZeroTag:
		return 0, nil
	case WireChar:
		b, err := c.Read(1)
		if err != nil {
			return 0, err
		}
		return int64(int8(b[0])), nil
	case WireShort:
		b, err := c.Read(2)
		if err != nil {
			return 0, err
		}
		return int64(int16(binary.BigEndian.Uint16(b))), nil
	case WireInt32:
		b, err := c.Read(4)
		if err != nil {
			return 0, err
		}
		return int64(int32(binary.BigEndian.Uint32(b))), nil
	case WireInt64:
		b, err := c.Read(8)
		if err != nil {
			return 0, err
		}
		return int64(binary.BigEndian.Uint64(b)), nil
	}
	return 0, typeMismatchf(0, "integer", wt)
}

// ReadString reads a length-prefixed string in either the short (1-byte
// length) or long (4-byte length) form (spec.md §4.1 "string read for
// both length forms").
func (c *Cursor) ReadString(wt WireType) (string, error) {
	var length int
	switch wt {
	case WireString1:
		b, err := c.Read(1)
		if err != nil {
			return "", err
		}
		length = int(b[0])
	case WireString4:
		b, err := c.Read(4)
		if err != nil {
			return "", err
		}
		length = int(binary.BigEndian.Uint32(b))
	default:
		return "", typeMismatchf(0, "string", wt)
	}

	b, err := c.Read(length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
