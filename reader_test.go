package gamemaps

import (
	"errors"
	"io"
	"testing"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{
		0x34, 0x12, // u16
		0xFF, 0xFF, 0xFF, 0xFF, // i32 -1
		0x78, 0x56, 0x34, 0x12, // u32
		0x00, 0x01, // bool
		'a', 'b', 0, 0, // string
		0x99,
	})

	u16, err := c.ReadUint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadUint16 = %#x, %v", u16, err)
	}
	i32, err := c.ReadInt32()
	if err != nil || i32 != -1 {
		t.Fatalf("ReadInt32 = %d, %v", i32, err)
	}
	u32, err := c.ReadUint32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("ReadUint32 = %#x, %v", u32, err)
	}
	ok, err := c.ReadBool()
	if err != nil || !ok {
		t.Fatalf("ReadBool = %v, %v", ok, err)
	}
	s, err := c.ReadString(4)
	if err != nil || s != "ab\x00\x00" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	if c.Offset() != 16 || c.Len() != 1 {
		t.Fatalf("offset=%d len=%d", c.Offset(), c.Len())
	}
	if rest := c.Remaining(); len(rest) != 1 || rest[0] != 0x99 {
		t.Fatalf("Remaining = %x", rest)
	}
}

func TestCursorTruncation(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if _, err := c.ReadUint32(); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
	if c.Offset() != 0 {
		t.Fatalf("failed read advanced to %d", c.Offset())
	}
	if _, err := c.ReadString(4); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}

	c = NewCursor(nil)
	if _, err := c.ReadByte(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if _, err := c.ReadBool(); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
}

func TestCursorAt(t *testing.T) {
	c, err := NewCursorAt([]byte{0, 0, 7, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := c.ReadUint16(); v != 7 {
		t.Fatalf("got %d", v)
	}

	for _, off := range []int{-1, 5} {
		if _, err := NewCursorAt([]byte{0, 0, 7, 0}, off); !errors.Is(err, ErrInvalidOffset) {
			t.Fatalf("offset %d: want ErrInvalidOffset, got %v", off, err)
		}
	}
}

func TestCursorStringPermissive(t *testing.T) {
	raw := []byte{'M', 0xFF, 0xFE, 'X', 0x01}

	cur := NewCursor(raw)
	s, err := cur.ReadString(4)
	if err != nil {
		t.Fatal(err)
	}
	if s != "M��X" {
		t.Fatalf("utf8 = %q", s)
	}
	if cur.Offset() != 4 {
		t.Fatalf("offset after invalid bytes = %d, want 4", cur.Offset())
	}
	if b, err := cur.ReadByte(); err != nil || b != 0x01 {
		t.Fatalf("next byte = %x, %v", b, err)
	}

	s, err = NewCursor([]byte{0x80, 'a'}).WithCharset(CharsetCP437).ReadString(2)
	if err != nil {
		t.Fatal(err)
	}
	if s != "Ça" {
		t.Fatalf("cp437 = %q", s)
	}

	s, err = NewCursor([]byte{0x80}).WithCharset(CharsetWindows1252).ReadString(1)
	if err != nil {
		t.Fatal(err)
	}
	if s != "€" {
		t.Fatalf("cp1252 = %q", s)
	}
}
