// Package config loads mapdump settings from YAML with environment fallbacks.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/gamemaps"
	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML file.
type Config struct {
	Files  FilesConfig  `yaml:"files"`
	Decode DecodeConfig `yaml:"decode"`
	Output OutputConfig `yaml:"output"`
	Cache  CacheConfig  `yaml:"cache"`
}

// FilesConfig locates the MAPHEAD and GAMEMAPS files.
type FilesConfig struct {
	MapHead  string `yaml:"maphead"`
	GameMaps string `yaml:"gamemaps"`
}

// DecodeConfig selects FAR offset handling and the map name charset.
type DecodeConfig struct {
	LegacyFar bool   `yaml:"legacy_far"`
	Charset   string `yaml:"charset"`
}

// OutputConfig controls how decoded maps are written.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or raw
	Zstd   bool   `yaml:"zstd"`
}

// CacheConfig sizes the decoded map cache used for explicit selections.
type CacheConfig struct {
	Maps int `yaml:"maps"`
}

// GetMapHead returns the MAPHEAD path: config -> GAMEMAPS_HEAD -> MAPHEAD.WL6.
func (f *FilesConfig) GetMapHead() string {
	return withEnvFallback(f.MapHead, "GAMEMAPS_HEAD", "MAPHEAD.WL6")
}

// GetGameMaps returns the GAMEMAPS path: config -> GAMEMAPS_DATA -> GAMEMAPS.WL6.
func (f *FilesConfig) GetGameMaps() string {
	return withEnvFallback(f.GameMaps, "GAMEMAPS_DATA", "GAMEMAPS.WL6")
}

// GetFormat returns the output format, text by default.
func (o *OutputConfig) GetFormat() string {
	if o.Format == "" {
		return "text"
	}
	return o.Format
}

// GetMaps returns the cache size in maps, 8 by default.
func (c *CacheConfig) GetMaps() int {
	if c.Maps <= 0 {
		return 8
	}
	return c.Maps
}

// Options converts the decode section to library options.
func (d *DecodeConfig) Options() (*gamemaps.Options, error) {
	opts := gamemaps.DefaultOptions()
	if d.LegacyFar {
		opts.FarOffset = gamemaps.FarOffsetLegacy
	}

	cs, ok := gamemaps.ParseNameCharset(d.Charset)
	if !ok {
		return nil, fmt.Errorf("unknown charset %q", d.Charset)
	}
	opts.NameCharset = cs

	return opts, nil
}

// withEnvFallback returns the value with priority: config -> env -> default.
func withEnvFallback(value, envVar, def string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envVar); env != "" {
		return env
	}

	return def
}

// Load reads a YAML config file.
// If path == "", it tries GAMEMAPS_CONFIG and otherwise returns an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GAMEMAPS_CONFIG")
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}
