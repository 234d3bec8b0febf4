package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	"github.com/woozymasta/gamemaps"
)

func dump(w io.Writer, format string, compress bool, maps []*gamemaps.MapData) error {
	switch format {
	case "text":
		return writeText(w, maps)
	case "json":
		return writeJSON(w, maps)
	case "raw":
		return writeRaw(w, maps, compress)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeList(w io.Writer, headers []gamemaps.MapHeader) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tNAME\tSIZE\tPLANE BYTES")
	for _, h := range headers {
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%d/%d/%d\n",
			h.Slot, h.Name, h.Width, h.Height, h.PlaneLength[0], h.PlaneLength[1], h.PlaneLength[2])
	}

	return tw.Flush()
}

// writeText prints each map as a header line and one 64x64 hex grid per plane.
func writeText(w io.Writer, maps []*gamemaps.MapData) error {
	bw := bufio.NewWriter(w)
	for _, md := range maps {
		fmt.Fprintf(bw, "map %d %q xxhash %016x\n", md.Slot, md.Name, md.Sum64())
		for i, p := range md.Planes {
			fmt.Fprintf(bw, "plane %d:\n", i)
			for y := 0; y < gamemaps.PlaneHeight; y++ {
				for x := 0; x < gamemaps.PlaneWidth; x++ {
					if x > 0 {
						bw.WriteByte(' ')
					}
					fmt.Fprintf(bw, "%04x", p.At(x, y))
				}
				bw.WriteByte('\n')
			}
		}
	}

	return bw.Flush()
}

func writeJSON(w io.Writer, maps []*gamemaps.MapData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(maps)
}

// writeRaw writes every plane as little-endian cells, maps and planes in order.
func writeRaw(w io.Writer, maps []*gamemaps.MapData, compress bool) error {
	if !compress {
		for _, md := range maps {
			for _, p := range md.Planes {
				if _, err := w.Write(p.Bytes()); err != nil {
					return err
				}
			}
		}
		return nil
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := writeRaw(enc, maps, false); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}
