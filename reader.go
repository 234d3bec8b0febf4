package gamemaps

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Cursor reads little-endian values sequentially from a byte slice.
// Reads past the end return ErrTruncatedInput and leave the offset unchanged.
type Cursor struct {
	data    []byte      // The byte slice to read from.
	pos     int         // The current position in the byte slice.
	charset NameCharset // Decoder used by ReadString.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// NewCursorAt returns a cursor positioned at offset. An offset outside data yields ErrInvalidOffset.
func NewCursorAt(data []byte, offset int) (*Cursor, error) {
	if offset < 0 || offset > len(data) {
		return nil, fmt.Errorf("%w: %d not within %d bytes", ErrInvalidOffset, offset, len(data))
	}

	return &Cursor{data: data, pos: offset}, nil
}

// WithCharset sets the decoder used by ReadString and returns the cursor.
func (c *Cursor) WithCharset(cs NameCharset) *Cursor {
	c.charset = cs
	return c
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Remaining returns the unread suffix. The slice aliases the cursor's buffer.
func (c *Cursor) Remaining() []byte {
	return c.data[c.pos:]
}

// take returns the next n bytes and advances past them.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedInput, n, c.pos, c.Len())
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadByte reads one byte. It returns io.EOF at the end of the buffer.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// ReadUint16 reads an unsigned 16-bit value.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit value.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit value.
func (c *Cursor) ReadInt32() (int32, error) {
	u, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}

	return int32(u), nil // #nosec G115 -- reinterpret bit pattern
}

// ReadBool reads a 16-bit word and reports whether it is nonzero.
func (c *Cursor) ReadBool() (bool, error) {
	u, err := c.ReadUint16()
	if err != nil {
		return false, err
	}

	return u != 0, nil
}

// ReadString reads an n-byte text field. Invalid sequences are replaced, never rejected,
// and the cursor always advances by exactly n.
func (c *Cursor) ReadString(n int) (string, error) {
	b, err := c.take(n)
	if err != nil {
		return "", err
	}

	return decodeText(b, c.charset), nil
}

// decodeText decodes b with the given charset, falling back to lossy UTF-8.
func decodeText(b []byte, cs NameCharset) string {
	out, err := cs.decoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}

	return string(out)
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
