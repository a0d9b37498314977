package cache

import "sync"

// EpochCache holds values computed under a single epoch (e.g. a count of completed
// sessions). A lookup with a different epoch drops every entry, not just the one asked for.
type EpochCache[K comparable, V any] struct {
	mu      sync.Mutex
	epoch   int
	hasData bool
	entries map[K]V
}

func NewEpochCache[K comparable, V any]() *EpochCache[K, V] {
	return &EpochCache[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the value stored for key only if it was stored under the given epoch.
func (c *EpochCache[K, V]) Get(key K, epoch int) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	if !c.hasData {
		return zero, false
	}
	if c.epoch != epoch {
		c.reset()
		return zero, false
	}

	v, ok := c.entries[key]
	return v, ok
}

// Set stores the value under the given epoch. Storing under a new epoch discards
// everything computed under the previous one.
func (c *EpochCache[K, V]) Set(key K, epoch int, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasData && c.epoch != epoch {
		c.reset()
	}
	c.epoch = epoch
	c.hasData = true
	c.entries[key] = value
}

func (c *EpochCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *EpochCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *EpochCache[K, V]) reset() {
	c.entries = make(map[K]V)
	c.hasData = false
	c.epoch = 0
}
