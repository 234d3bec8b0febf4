package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/woozymasta/gamemaps"
)

// selectMaps returns the slots named by spec (comma-separated numbers or "all")
// followed by those whose name matches glob. With neither, every map is selected.
func selectMaps(headers []gamemaps.MapHeader, spec, glob string) ([]int, error) {
	var slots []int

	if selectsAll(spec, glob) {
		for _, h := range headers {
			slots = append(slots, h.Slot)
		}
		return slots, nil
	}

	if spec != "" {
		for _, field := range strings.Split(spec, ",") {
			slot, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("bad map slot %q", field)
			}
			if _, err := gamemaps.FindHeader(headers, slot); err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
	}

	if glob != "" {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("bad name pattern %q", glob)
		}
		for _, h := range headers {
			if ok, _ := doublestar.Match(glob, h.Name); ok {
				slots = append(slots, h.Slot)
			}
		}
		if len(slots) == 0 {
			return nil, fmt.Errorf("no map name matches %q", glob)
		}
	}

	return slots, nil
}

// selectsAll reports whether spec and glob pick every map in the file.
func selectsAll(spec, glob string) bool {
	return spec == "all" || (spec == "" && glob == "")
}
