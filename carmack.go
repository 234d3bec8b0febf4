package gamemaps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// CarmackExpand expands Carmack-compressed src into a new buffer of exactly outLen bytes.
// Options nil means DefaultOptions (absolute FAR offsets).
func CarmackExpand(src []byte, outLen int, opts *Options) ([]byte, error) {
	out, _, err := CarmackExpandBlock(src, outLen, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CarmackExpandBlock expands one Carmack stream from the beginning of src.
// It returns the expanded bytes and the number of consumed input bytes.
// Trailing input after the last token is ignored.
func CarmackExpandBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	cur := NewCursor(src)
	out, err := carmackExpandFromByteReader(cur, outLen, opts)
	if err != nil {
		return nil, cur.Offset(), err
	}

	return out, cur.Offset(), nil
}

// CarmackExpandFromReader expands one Carmack stream from r and returns consumed bytes.
// Decoding stops as soon as outLen output bytes are produced and the consumed count
// covers exactly the stream. r itself is left right after the stream only when it
// implements io.ByteReader; otherwise a bufio.Reader wraps it and may read ahead.
func CarmackExpandFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := carmackExpandFromByteReader(countingReader, outLen, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// carmackExpandFromByteReader expands from a byte reader.
//
// Tokens are 2 bytes (count, tag). Input running out on a token boundary ends the
// token loop and the result is zero-padded; running out inside a NEAR/FAR token
// is ErrTruncatedInput.
func carmackExpandFromByteReader(r io.ByteReader, outLen int, opts *Options) ([]byte, error) {
	opts = orDefault(opts)

	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, 0, outLen)
	remaining := outLen / 2 // words still to produce

	// Read a byte from the reader.
	// EOF is reported through the second return value; other errors pass through.
	readByte := func() (byte, bool, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}

			return 0, false, err
		}

		return b, true, nil
	}

	// Read a byte that must be present because a token has started.
	mustByte := func(tag byte) (byte, error) {
		b, ok, err := readByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("%w: token 0x%02x cut short at output %d", ErrTruncatedInput, tag, len(out))
		}

		return b, nil
	}

	// Copy count words starting at byte position src, clipped to the words still owed
	// so an odd trailing byte keeps its slot. Source and destination may overlap,
	// so each byte is appended individually and later reads see earlier writes.
	copyWords := func(src, count int) {
		count = min(count, remaining)
		for i := 0; i < count*2; i++ {
			out = append(out, out[src+i])
		}
		remaining -= count
	}

	for remaining > 0 {
		count, ok, err := readByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		tag, ok, err := readByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			// Lone byte left: keep it as the trailing raw byte.
			out = append(out, count)
			break
		}

		switch tag {
		case NearTag:
			offset, err := mustByte(tag)
			if err != nil {
				return nil, err
			}

			if count == 0 {
				// Escaped literal whose high byte happens to be the tag.
				out = append(out, offset, NearTag)
				remaining--
				continue
			}

			src := len(out) - int(offset)*2
			if offset == 0 || src < 0 {
				return nil, fmt.Errorf("%w: near offset %d words at output %d", ErrCorruptToken, offset, len(out))
			}

			copyWords(src, int(count))

		case FarTag:
			lo, err := mustByte(tag)
			if err != nil {
				return nil, err
			}

			if count == 0 {
				out = append(out, lo, FarTag)
				remaining--
				continue
			}

			hi, err := mustByte(tag)
			if err != nil {
				return nil, err
			}

			offset := int(hi)<<8 | int(lo)
			src := offset * 2
			if opts.FarOffset == FarOffsetLegacy {
				src = (offset - 1) * 2
			}
			if src < 0 || src >= len(out) {
				return nil, fmt.Errorf("%w: far offset %d words at output %d", ErrCorruptToken, offset, len(out))
			}

			copyWords(src, int(count))

		default:
			// Plain word, stored as is.
			out = append(out, count, tag)
			remaining--
		}
	}

	// Odd lengths carry one raw byte after the tokens.
	if len(out) < outLen {
		b, ok, err := readByte()
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, b)
		}
	}

	for len(out) < outLen {
		out = append(out, 0)
	}

	return out, nil
}
