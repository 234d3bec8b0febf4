package gamemaps

import (
	"fmt"
	"io"
	"strings"
)

// Directory is the MAPHEAD preamble: the RLEW tag shared by all maps and the header offsets.
// A negative offset marks an empty slot.
type Directory struct {
	RLEWTag uint16            `json:"rlewTag"`
	Offsets [NumOffsets]int32 `json:"headerOffsets"`
}

// MapHeader describes one stored map.
type MapHeader struct {
	Slot        int                  `json:"slot"` // Directory slot the header was read from.
	PlaneStart  [HeaderPlanes]int32  `json:"planeStart"`
	PlaneLength [HeaderPlanes]uint16 `json:"planeLength"`
	Width       uint16               `json:"width"`
	Height      uint16               `json:"height"`
	Name        string               `json:"name"`
}

// ParseDirectory parses the fixed-size directory at the start of b.
func ParseDirectory(b []byte) (*Directory, error) {
	cur := NewCursor(b)

	tag, err := cur.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("directory tag: %w", err)
	}

	dir := &Directory{RLEWTag: tag}
	for i := range dir.Offsets {
		off, err := cur.ReadInt32()
		if err != nil {
			return nil, fmt.Errorf("directory offset %d: %w", i, err)
		}
		dir.Offsets[i] = off
	}

	return dir, nil
}

// ParseHeaders reads the header record of every present map among the first NumMaps slots.
// b is the whole MAPHEAD buffer; offsets in dir are absolute positions within it.
// Empty slots are skipped; each header keeps its slot number.
func ParseHeaders(b []byte, dir *Directory, opts *Options) ([]MapHeader, error) {
	if dir == nil {
		return nil, ErrNilDirectory
	}
	opts = orDefault(opts)

	headers := make([]MapHeader, 0, NumMaps)
	for slot := 0; slot < NumMaps; slot++ {
		pos := dir.Offsets[slot]
		if pos < 0 {
			continue
		}

		h, err := parseHeader(b, int(pos), opts.NameCharset)
		if err != nil {
			return nil, fmt.Errorf("map %d header: %w", slot, err)
		}
		h.Slot = slot

		headers = append(headers, h)
	}

	return headers, nil
}

func parseHeader(b []byte, pos int, cs NameCharset) (MapHeader, error) {
	var h MapHeader

	cur, err := NewCursorAt(b, pos)
	if err != nil {
		return h, err
	}
	cur.WithCharset(cs)

	for i := range h.PlaneStart {
		if h.PlaneStart[i], err = cur.ReadInt32(); err != nil {
			return h, err
		}
	}
	for i := range h.PlaneLength {
		if h.PlaneLength[i], err = cur.ReadUint16(); err != nil {
			return h, err
		}
	}
	if h.Width, err = cur.ReadUint16(); err != nil {
		return h, err
	}
	if h.Height, err = cur.ReadUint16(); err != nil {
		return h, err
	}

	name, err := cur.ReadString(NameSize)
	if err != nil {
		return h, err
	}
	h.Name = strings.ReplaceAll(name, "\x00", "")

	return h, nil
}

// ReadMapHead reads a whole MAPHEAD stream and parses its directory and headers.
func ReadMapHead(r io.Reader, opts *Options) (*Directory, []MapHeader, error) {
	if r == nil {
		return nil, nil, ErrNilReader
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	dir, err := ParseDirectory(b)
	if err != nil {
		return nil, nil, err
	}

	headers, err := ParseHeaders(b, dir, opts)
	if err != nil {
		return nil, nil, err
	}

	return dir, headers, nil
}

// FindHeader returns the header stored for slot.
func FindHeader(headers []MapHeader, slot int) (*MapHeader, error) {
	for i := range headers {
		if headers[i].Slot == slot {
			return &headers[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrMapNotFound, slot)
}
