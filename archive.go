package gamemaps

import (
	"context"
	"io"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Archive pairs a parsed MAPHEAD with the GAMEMAPS data it describes.
// It is immutable after OpenArchive and safe for concurrent use.
type Archive struct {
	dir     *Directory
	headers []MapHeader
	data    io.ReaderAt
	opts    Options
}

// OpenArchive parses head (the MAPHEAD contents) and binds it to data (the GAMEMAPS contents).
// Options nil means DefaultOptions.
func OpenArchive(head []byte, data io.ReaderAt, opts *Options) (*Archive, error) {
	if data == nil {
		return nil, ErrNilReader
	}
	opts = orDefault(opts)

	dir, err := ParseDirectory(head)
	if err != nil {
		return nil, err
	}

	headers, err := ParseHeaders(head, dir, opts)
	if err != nil {
		return nil, err
	}

	return &Archive{dir: dir, headers: headers, data: data, opts: *opts}, nil
}

// Directory returns a copy of the parsed directory.
func (a *Archive) Directory() Directory {
	return *a.dir
}

// Maps returns the headers of all present maps in slot order.
func (a *Archive) Maps() []MapHeader {
	return slices.Clone(a.headers)
}

// Header returns the header stored for slot.
func (a *Archive) Header(slot int) (MapHeader, error) {
	h, err := FindHeader(a.headers, slot)
	if err != nil {
		return MapHeader{}, err
	}

	return *h, nil
}

// Load decodes the map in slot.
func (a *Archive) Load(slot int) (*MapData, error) {
	return LoadMapAt(a.data, a.dir, a.headers, slot, &a.opts)
}

// LoadAll decodes every present map, in slot order. The first failure cancels
// the remaining loads and is returned alone.
func (a *Archive) LoadAll(ctx context.Context) ([]*MapData, error) {
	out := make([]*MapData, len(a.headers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, h := range a.headers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			md, err := a.Load(h.Slot)
			if err != nil {
				return err
			}
			out[i] = md

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
