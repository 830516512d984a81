// SPDX-License-Identifier: EPL-2.0

package peervolume

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// DefaultCapacity is used when a cache is built with capacity 0.
	DefaultCapacity = 5

	// MaxVolume is the highest AVRCP volume level.
	MaxVolume = 127
)

// Cache remembers the last volume level of up to Capacity() peers.
//
// Entries keep their insertion order. Updating the volume of a known peer
// does not move it; when a new peer arrives at a full cache the oldest
// inserted entry is dropped (FIFO, not LRU).
//
// Cache is safe for concurrent use.
type Cache struct {
	mtx sync.Mutex

	capacity      int
	defaultVolume uint8
	entries       *orderedmap.OrderedMap[Address, uint8]
}

// NewCache returns an empty cache. A zero capacity selects DefaultCapacity
// and defaultVolume is clamped to MaxVolume.
func NewCache(capacity, defaultVolume uint8) *Cache {
	c := &Cache{
		capacity: int(capacity),
		entries:  orderedmap.New[Address, uint8](),
	}
	if c.capacity == 0 {
		c.capacity = DefaultCapacity
	}
	c.defaultVolume = min(defaultVolume, MaxVolume)
	return c
}

// Get returns the stored volume for a, or the default volume. It never
// inserts.
func (c *Cache) Get(a Address) uint8 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if v, ok := c.entries.Get(a); ok {
		return v
	}
	return c.defaultVolume
}

// GetOrInsert returns a handle to the slot of a, creating it with the
// default volume when a is unknown. Creation first evicts the oldest
// entries until there is room.
func (c *Cache) GetOrInsert(a Address) *Handle {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if pair := c.entries.GetPair(a); pair != nil {
		return &Handle{cache: c, pair: pair}
	}

	for c.entries.Len() >= c.capacity {
		oldest := c.entries.Oldest()
		c.entries.Delete(oldest.Key)
	}

	c.entries.Set(a, c.defaultVolume)
	return &Handle{cache: c, pair: c.entries.GetPair(a)}
}

// Contains reports whether a has a slot, without inserting it.
func (c *Cache) Contains(a Address) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	_, ok := c.entries.Get(a)
	return ok
}

// SetDefaultVolume changes the volume given to peers inserted from now on.
// Values above MaxVolume are clamped.
func (c *Cache) SetDefaultVolume(v uint8) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.defaultVolume = min(v, MaxVolume)
}

// DefaultVolume is the volume handed to newly inserted peers.
func (c *Cache) DefaultVolume() uint8 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.defaultVolume
}

// Len is the number of cached peers.
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.entries.Len()
}

func (c *Cache) Capacity() int {
	return c.capacity
}

// Addresses lists the cached peers oldest first.
func (c *Cache) Addresses() []Address {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	addrs := make([]Address, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		addrs = append(addrs, pair.Key)
	}
	return addrs
}

// Handle is a writable reference to one cache slot. It stays attached until
// its entry is evicted; after that Set is ignored and Volume reports the
// last value seen.
type Handle struct {
	cache *Cache
	pair  *orderedmap.Pair[Address, uint8]
}

func (h *Handle) Address() Address {
	return h.pair.Key
}

// Volume reads the slot. A detached handle keeps its last value.
func (h *Handle) Volume() uint8 {
	h.cache.mtx.Lock()
	defer h.cache.mtx.Unlock()

	return h.pair.Value
}

// Set stores v in the slot without changing its position. The value is
// stored as is.
func (h *Handle) Set(v uint8) {
	h.cache.mtx.Lock()
	defer h.cache.mtx.Unlock()

	if !h.attached() {
		return
	}
	h.pair.Value = v
}

// Attached reports whether the slot is still in the cache.
func (h *Handle) Attached() bool {
	h.cache.mtx.Lock()
	defer h.cache.mtx.Unlock()

	return h.attached()
}

func (h *Handle) attached() bool {
	return h.cache.entries.GetPair(h.pair.Key) == h.pair
}
