/*
Package gamemaps decodes tile maps from MAPHEAD/GAMEMAPS style game data files.

Format: MAPHEAD starts with a 16-bit RLEW tag and 100 signed 32-bit header offsets
(negative = empty slot); only the first 60 slots hold maps. Each header is 38 bytes:
3 plane starts (int32), 3 plane lengths (uint16), width, height (uint16) and a
16-byte NUL-padded name. All integers are little-endian.

A plane in GAMEMAPS is stored as a 16-bit expanded length followed by a Carmack
stream. The Carmack output carries its own 16-bit length and then an RLEW stream
that expands to 64x64 = 4096 tile IDs. Only the first two planes are decoded.

Carmack tokens are 2 bytes (count, tag). Tag 0xA7 (NEAR) copies count words from
offset words back; tag 0xA8 (FAR) copies count words from an absolute word offset.
Count 0 escapes a literal word whose high byte equals the tag. Any other token is
a literal word. Back-references may overlap the bytes they produce.

RLEW words equal to the tag are followed by a count and a value to repeat;
other words are copied as they are.

Use ReadMapHead or ParseDirectory/ParseHeaders to read MAPHEAD.
Use LoadMap (io.ReadSeeker) or LoadMapAt (io.ReaderAt) to decode a map by slot.
Use DecodePlane, CarmackExpand and RLEWExpand to work on raw buffers.
Use OpenArchive for an immutable MAPHEAD+GAMEMAPS pair safe for concurrent loads.
Use LegacyOptions() for data written with the (offset-1)*2 FAR arithmetic.

# Examples

Decode one map from files on disk:

	dir, headers, err := gamemaps.ReadMapHead(headFile, nil)
	if err != nil {
		return err
	}
	md, err := gamemaps.LoadMap(mapsFile, dir, headers, 0, nil)
	if err != nil {
		return err
	}
	walls := md.Planes[0]

Load every map concurrently:

	a, err := gamemaps.OpenArchive(head, mapsFile, nil)
	if err != nil {
		return err
	}
	all, err := a.LoadAll(ctx)

Tell which plane failed:

	var pe *gamemaps.PlaneError
	if errors.As(err, &pe) && errors.Is(err, gamemaps.ErrCorruptToken) {
		log.Printf("map %d plane %d is corrupt", pe.Slot, pe.Plane)
	}

Serialize a plane for byte-oriented consumers:

	raw := md.Planes[0].Bytes() // 8192 bytes, little-endian pairs
*/
package gamemaps
