// Package mapcache keeps recently decoded maps in a size-bounded TinyLFU cache.
//
// Decoding is deterministic, so a cached map is as good as a fresh one. Every
// result handed out is a deep copy, so callers still own what they get.
//
// The cache pays off for programs that revisit maps; a one-shot decode of every
// slot is better served by gamemaps.Archive.LoadAll.
package mapcache

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
	"github.com/woozymasta/gamemaps"
)

// Loader decodes a map by slot. *gamemaps.Archive satisfies it.
type Loader interface {
	Load(slot int) (*gamemaps.MapData, error)
}

// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	loader Loader

	mu  sync.Mutex // tinylfu.T is not safe for concurrent use
	lfu *tinylfu.T[int, *gamemaps.MapData]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats counts cache lookups.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// minCapacity is the smallest size tinylfu can split into its window and
// probation/protected segments without an empty segment.
const minCapacity = 3

// New returns a cache holding up to capacity maps in front of loader.
// Capacities below minCapacity are raised to it.
func New(loader Loader, capacity int) *Cache {
	capacity = max(capacity, minCapacity)

	return &Cache{
		loader: loader,
		lfu:    tinylfu.New[int, *gamemaps.MapData](capacity, capacity*10, hashSlot),
	}
}

// Load returns a private copy of the map in slot, decoding it on a miss.
// Failures are not cached.
func (c *Cache) Load(slot int) (*gamemaps.MapData, error) {
	c.mu.Lock()
	md, ok := c.lfu.Get(slot)
	c.mu.Unlock()
	if ok {
		c.hits.Add(1)
		return md.Clone(), nil
	}

	c.misses.Add(1)
	md, err := c.loader.Load(slot)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if _, dup := c.lfu.Get(slot); !dup {
		c.lfu.Add(slot, md)
	}
	c.mu.Unlock()

	return md.Clone(), nil
}

// Stats returns the hit and miss counts so far.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func hashSlot(slot int) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(slot)) // #nosec G115 -- bit pattern only
	return xxhash.Sum64(b[:])
}
