package gamemaps

import "github.com/cespare/xxhash/v2"

// Sum64 returns the xxhash of the plane's little-endian bytes.
func (p Plane) Sum64() uint64 {
	return xxhash.Sum64(p.Bytes())
}

// Sum64 returns the xxhash over all planes of m, in order.
func (m *MapData) Sum64() uint64 {
	d := xxhash.New()
	for _, p := range m.Planes {
		_, _ = d.Write(p.Bytes())
	}

	return d.Sum64()
}
