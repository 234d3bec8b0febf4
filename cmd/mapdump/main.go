// Command mapdump lists and decodes maps from MAPHEAD/GAMEMAPS files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/woozymasta/gamemaps"
	"github.com/woozymasta/gamemaps/internal/config"
	"github.com/woozymasta/gamemaps/mapcache"
)

var verbose bool

func debugf(format string, args ...any) {
	if verbose {
		log.Printf("[DEBUG] "+format, args...)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mapdump: ")

	var (
		configPath = flag.String("config", "", "YAML config file (default $GAMEMAPS_CONFIG)")
		headPath   = flag.String("head", "", "MAPHEAD file (default $GAMEMAPS_HEAD or MAPHEAD.WL6)")
		mapsPath   = flag.String("maps", "", "GAMEMAPS file (default $GAMEMAPS_DATA or GAMEMAPS.WL6)")
		mapSpec    = flag.String("map", "", `comma-separated map slots, or "all"`)
		nameGlob   = flag.String("name", "", `select maps whose name matches a glob, e.g. "Wolf1*"`)
		format     = flag.String("format", "", "output format: text, json or raw")
		useZstd    = flag.Bool("zstd", false, "compress raw output with zstd")
		outPath    = flag.String("o", "", "output file (default stdout)")
		legacyFar  = flag.Bool("legacy-far", false, "use (offset-1)*2 FAR back-reference arithmetic")
		charset    = flag.String("charset", "", "map name charset: utf8, cp437 or cp1252")
		list       = flag.Bool("list", false, "list maps and exit")
	)
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Flags win over the config file.
	if *headPath != "" {
		cfg.Files.MapHead = *headPath
	}
	if *mapsPath != "" {
		cfg.Files.GameMaps = *mapsPath
	}
	if *legacyFar {
		cfg.Decode.LegacyFar = true
	}
	if *charset != "" {
		cfg.Decode.Charset = *charset
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *useZstd {
		cfg.Output.Zstd = true
	}

	if err := run(cfg, *list, *mapSpec, *nameGlob, *outPath); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, list bool, mapSpec, nameGlob, outPath string) error {
	opts, err := cfg.Decode.Options()
	if err != nil {
		return err
	}

	headPath := cfg.Files.GetMapHead()
	head, err := os.ReadFile(headPath)
	if err != nil {
		return err
	}

	dataPath := cfg.Files.GetGameMaps()
	data, err := os.Open(dataPath)
	if err != nil {
		return err
	}
	defer data.Close()

	a, err := gamemaps.OpenArchive(head, data, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", headPath, err)
	}
	debugf("%s: %d maps, rlew tag %#04x, far offsets %s", headPath, len(a.Maps()), a.Directory().RLEWTag, opts.FarOffset)

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if list {
		return writeList(w, a.Maps())
	}

	if selectsAll(mapSpec, nameGlob) {
		maps, err := a.LoadAll(context.Background())
		if err != nil {
			return fmt.Errorf("%s: %w", dataPath, err)
		}
		debugf("decoded all %d maps", len(maps))

		return dump(w, cfg.Output.GetFormat(), cfg.Output.Zstd, maps)
	}

	slots, err := selectMaps(a.Maps(), mapSpec, nameGlob)
	if err != nil {
		return err
	}
	debugf("selected slots %v", slots)

	cache := mapcache.New(a, cfg.Cache.GetMaps())
	maps := make([]*gamemaps.MapData, 0, len(slots))
	for _, slot := range slots {
		md, err := cache.Load(slot)
		if err != nil {
			return fmt.Errorf("%s: %w", dataPath, err)
		}
		maps = append(maps, md)
	}
	debugf("cache %+v", cache.Stats())

	return dump(w, cfg.Output.GetFormat(), cfg.Output.Zstd, maps)
}
