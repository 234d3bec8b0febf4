package gamemaps

// Carmack tag bytes. A token whose high byte equals one of these is a back-reference.
const (
	NearTag = 0xA7 // Back-reference relative to the current output position.
	FarTag  = 0xA8 // Back-reference to an absolute word offset from the start of output.
)

// MAPHEAD / GAMEMAPS layout constants.
const (
	NumOffsets    = 100 // Header offsets stored in the directory.
	NumMaps       = 60  // Slots actually consulted when parsing headers.
	HeaderPlanes  = 3   // Planes declared per map header.
	MapPlanes     = 2   // Planes decoded by the loader.
	PlaneWidth    = 64
	PlaneHeight   = 64
	PlaneSize     = PlaneWidth * PlaneHeight // Cells per decoded plane.
	NameSize      = 16                       // Raw bytes of the map name field.
	DirectorySize = 2 + 4*NumOffsets         // RLEW tag + offsets.
	HeaderSize    = 4*HeaderPlanes + 2*HeaderPlanes + 2 + 2 + NameSize
)
