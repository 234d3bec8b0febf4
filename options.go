package gamemaps

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// FarOffsetMode selects how a Carmack FAR back-reference offset maps to an output byte position.
type FarOffsetMode int

// FAR offset modes.
const (
	FarOffsetAbsolute FarOffsetMode = iota // position = offset*2 (default).
	FarOffsetLegacy                        // position = (offset-1)*2, seen in some older decoders.
)

func (m FarOffsetMode) String() string {
	switch m {
	case FarOffsetAbsolute:
		return "absolute"
	case FarOffsetLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// NameCharset selects how the 16-byte map name field is decoded.
type NameCharset int

// Name charsets. Decoding never fails; invalid bytes become U+FFFD.
const (
	CharsetUTF8        NameCharset = iota // Lossy UTF-8 (default).
	CharsetCP437                          // DOS code page 437.
	CharsetWindows1252                    // Western Windows code page.
)

// ParseNameCharset maps a charset name to its constant. Unknown names return false.
func ParseNameCharset(name string) (NameCharset, bool) {
	switch name {
	case "", "utf8", "utf-8":
		return CharsetUTF8, true
	case "cp437", "ibm437":
		return CharsetCP437, true
	case "cp1252", "windows-1252", "windows1252":
		return CharsetWindows1252, true
	default:
		return CharsetUTF8, false
	}
}

func (c NameCharset) decoder() *encoding.Decoder {
	switch c {
	case CharsetCP437:
		return charmap.CodePage437.NewDecoder()
	case CharsetWindows1252:
		return charmap.Windows1252.NewDecoder()
	default:
		return unicode.UTF8.NewDecoder()
	}
}

// Options configures decoding behavior.
type Options struct {
	// FarOffset selects the FAR back-reference arithmetic.
	FarOffset FarOffsetMode
	// NameCharset selects the decoder for map names.
	NameCharset NameCharset
}

// DefaultOptions returns options for default behavior: absolute FAR offsets, UTF-8 names.
func DefaultOptions() *Options {
	return &Options{
		FarOffset:   FarOffsetAbsolute,
		NameCharset: CharsetUTF8,
	}
}

// LegacyOptions returns options for data produced with the (offset-1)*2 FAR arithmetic and DOS names.
func LegacyOptions() *Options {
	return &Options{
		FarOffset:   FarOffsetLegacy,
		NameCharset: CharsetCP437,
	}
}

func orDefault(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}

	return opts
}
