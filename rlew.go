package gamemaps

import (
	"encoding/binary"
	"fmt"
)

// Plane is one decoded map layer: row-major tile IDs.
type Plane []uint16

// RLEWExpand expands an RLEW word stream into exactly outLen cells.
//
// Words equal to tag introduce a run: a 16-bit count followed by the 16-bit value to repeat.
// Any other word is copied as one cell. An odd trailing input byte becomes the last cell.
// Runs are clipped at outLen and a short stream is padded with zero cells.
func RLEWExpand(src []byte, outLen int, tag uint16) (Plane, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make(Plane, 0, outLen)
	if outLen == 0 {
		return out, nil
	}

	trail := len(src)%2 != 0
	loopLen := outLen
	words := src
	if trail {
		loopLen--
		words = src[:len(src)-1]
	}

	cur := NewCursor(words)
	for len(out) < loopLen && cur.Len() >= 2 {
		w, err := cur.ReadUint16()
		if err != nil {
			return nil, err
		}

		if w != tag {
			out = append(out, w)
			continue
		}

		count, err := cur.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("%w: count at offset %d", ErrUnexpectedEscape, cur.Offset())
		}
		value, err := cur.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("%w: value at offset %d", ErrUnexpectedEscape, cur.Offset())
		}

		n := min(int(count), outLen-len(out))
		for range n {
			out = append(out, value)
		}
	}

	if trail && len(out) < outLen {
		out = append(out, uint16(src[len(src)-1]))
	}

	for len(out) < outLen {
		out = append(out, 0)
	}

	return out, nil
}

// At returns the cell at column x, row y of a 64-wide plane.
func (p Plane) At(x, y int) uint16 {
	return p[y*PlaneWidth+x]
}

// Clone returns a copy of p.
func (p Plane) Clone() Plane {
	if p == nil {
		return nil
	}

	return append(Plane(nil), p...)
}

// Bytes serializes the plane as little-endian byte pairs.
func (p Plane) Bytes() []byte {
	b := make([]byte, 2*len(p))
	for i, v := range p {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}

	return b
}

// PlaneFromBytes is the inverse of Plane.Bytes. An odd trailing byte becomes a final cell.
func PlaneFromBytes(b []byte) Plane {
	p := make(Plane, 0, (len(b)+1)/2)
	for i := 0; i+1 < len(b); i += 2 {
		p = append(p, binary.LittleEndian.Uint16(b[i:]))
	}
	if len(b)%2 != 0 {
		p = append(p, uint16(b[len(b)-1]))
	}

	return p
}
