package gamemaps

import (
	"encoding/binary"
)

const testTag = 0xABCD

// rlewEncode is a test-only encoder: runs longer than 3 and any cell equal to tag become escapes.
func rlewEncode(cells []uint16, tag uint16) []byte {
	var out []byte
	put := func(v uint16) { out = binary.LittleEndian.AppendUint16(out, v) }

	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		n := j - i
		if n > 3 || cells[i] == tag {
			put(tag)
			put(uint16(n))
			put(cells[i])
		} else {
			for k := i; k < j; k++ {
				put(cells[k])
			}
		}
		i = j
	}

	return out
}

// carmackLiterals stores b as literal Carmack tokens, escaping words whose high byte is a tag.
func carmackLiterals(b []byte) []byte {
	var out []byte
	i := 0
	for ; i+1 < len(b); i += 2 {
		lo, hi := b[i], b[i+1]
		if hi == NearTag || hi == FarTag {
			out = append(out, 0, hi, lo)
		} else {
			out = append(out, lo, hi)
		}
	}
	if i < len(b) {
		out = append(out, b[i])
	}

	return out
}

// encodePlane builds a stored plane: expanded length, then Carmack literals of (length prefix + RLEW).
func encodePlane(cells []uint16, tag uint16) []byte {
	rlew := rlewEncode(cells, tag)
	expanded := binary.LittleEndian.AppendUint16(nil, uint16(len(rlew)))
	expanded = append(expanded, rlew...)

	out := binary.LittleEndian.AppendUint16(nil, uint16(len(expanded)))
	return append(out, carmackLiterals(expanded)...)
}

type fixtureMap struct {
	slot          int
	name          string
	width, height uint16
	planes        [HeaderPlanes][]byte // stored plane bytes; nil means empty
}

// buildFiles lays out a MAPHEAD and GAMEMAPS pair. Slots without a map get offset -1.
func buildFiles(tag uint16, maps []fixtureMap) (head, data []byte) {
	data = []byte("TED5v1.0")

	var offsets [NumOffsets]int32
	for i := range offsets {
		offsets[i] = -1
	}

	var records []byte
	for _, m := range maps {
		var starts [HeaderPlanes]int32
		var lengths [HeaderPlanes]uint16
		for p, b := range m.planes {
			starts[p] = int32(len(data))
			lengths[p] = uint16(len(b))
			data = append(data, b...)
		}

		offsets[m.slot] = int32(DirectorySize + len(records))
		for _, s := range starts {
			records = binary.LittleEndian.AppendUint32(records, uint32(s))
		}
		for _, l := range lengths {
			records = binary.LittleEndian.AppendUint16(records, l)
		}
		records = binary.LittleEndian.AppendUint16(records, m.width)
		records = binary.LittleEndian.AppendUint16(records, m.height)

		var name [NameSize]byte
		copy(name[:], m.name)
		records = append(records, name[:]...)
	}

	head = binary.LittleEndian.AppendUint16(nil, tag)
	for _, o := range offsets {
		head = binary.LittleEndian.AppendUint32(head, uint32(o))
	}
	head = append(head, records...)

	return head, data
}

// filledPlane returns a PlaneSize plane holding fill, with overrides applied.
func filledPlane(fill uint16, overrides map[int]uint16) Plane {
	p := make(Plane, PlaneSize)
	for i := range p {
		p[i] = fill
	}
	for i, v := range overrides {
		p[i] = v
	}

	return p
}
