package gamemaps

import (
	"errors"
	"fmt"
	"io"
)

// MapData holds the decoded planes of one map. It is owned by the caller.
type MapData struct {
	Slot   int              `json:"slot"`
	Name   string           `json:"name"`
	Planes [MapPlanes]Plane `json:"planes"`
}

// Clone returns a deep copy of m.
func (m *MapData) Clone() *MapData {
	c := *m
	for i := range c.Planes {
		c.Planes[i] = m.Planes[i].Clone()
	}

	return &c
}

// readFunc fills buf with the bytes stored at off.
type readFunc func(buf []byte, off int64) error

// LoadMap decodes both used planes of the map in slot mapnum, reading plane data from rs.
// Any failure aborts the whole map and is returned as a *PlaneError.
func LoadMap(rs io.ReadSeeker, dir *Directory, headers []MapHeader, mapnum int, opts *Options) (*MapData, error) {
	if rs == nil {
		return nil, ErrNilReader
	}

	read := func(buf []byte, off int64) error {
		if _, err := rs.Seek(off, io.SeekStart); err != nil {
			return fmt.Errorf("%w: seek to %d: %v", ErrInvalidOffset, off, err)
		}
		if _, err := io.ReadFull(rs, buf); err != nil {
			return readError(err, len(buf), off)
		}

		return nil
	}

	return loadMap(read, dir, headers, mapnum, opts)
}

// LoadMapAt is LoadMap over an io.ReaderAt. It keeps no read position,
// so concurrent calls may share ra.
func LoadMapAt(ra io.ReaderAt, dir *Directory, headers []MapHeader, mapnum int, opts *Options) (*MapData, error) {
	if ra == nil {
		return nil, ErrNilReader
	}

	read := func(buf []byte, off int64) error {
		n, err := ra.ReadAt(buf, off)
		if n == len(buf) {
			return nil
		}
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return readError(err, len(buf), off)
	}

	return loadMap(read, dir, headers, mapnum, opts)
}

func loadMap(read readFunc, dir *Directory, headers []MapHeader, mapnum int, opts *Options) (*MapData, error) {
	if dir == nil {
		return nil, ErrNilDirectory
	}
	opts = orDefault(opts)

	h, err := FindHeader(headers, mapnum)
	if err != nil {
		return nil, err
	}

	md := &MapData{Slot: h.Slot, Name: h.Name}
	for plane := range md.Planes {
		p, err := loadPlane(read, h, plane, dir.RLEWTag, opts)
		if err != nil {
			return nil, &PlaneError{Slot: h.Slot, Plane: plane, Err: err}
		}
		md.Planes[plane] = p
	}

	return md, nil
}

func loadPlane(read readFunc, h *MapHeader, plane int, tag uint16, opts *Options) (Plane, error) {
	pos := h.PlaneStart[plane]
	if pos < 0 {
		return nil, fmt.Errorf("%w: plane start %d", ErrInvalidOffset, pos)
	}

	buf := make([]byte, h.PlaneLength[plane])
	if err := read(buf, int64(pos)); err != nil {
		return nil, err
	}

	return DecodePlane(buf, tag, opts)
}

// DecodePlane decodes one compressed plane as stored in GAMEMAPS: a 16-bit expanded
// length, then the Carmack stream, whose output starts with its own 16-bit length
// followed by the RLEW stream. The result always has PlaneSize cells.
func DecodePlane(compressed []byte, tag uint16, opts *Options) (Plane, error) {
	cur := NewCursor(compressed)

	expandedLen, err := cur.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("expanded length: %w", err)
	}

	carmacked, err := CarmackExpand(cur.Remaining(), int(expandedLen), opts)
	if err != nil {
		return nil, err
	}
	if len(carmacked) < 2 {
		return nil, fmt.Errorf("%w: expanded plane has %d bytes, no room for length prefix", ErrTruncatedInput, len(carmacked))
	}

	return RLEWExpand(carmacked[2:], PlaneSize, tag)
}

func readError(err error, n int, off int64) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %d bytes at %d", ErrTruncatedInput, n, off)
	}

	return err
}
