// Package shapecache is a registry of decoded draw command lists shared by
// key. Lists are normalized (colors converted to integers) on the way in and
// handed out by reference; callers must treat them as read-only.
package shapecache

import (
	"fmt"
	"sort"
	"sync"

	"github.com/seuros/gopher-shapes/src/logging"
	"github.com/seuros/gopher-shapes/src/shapes"
)

// Cache maps keys to normalized draw command lists.
// Thread-safe with RWMutex; lookups only take the read lock.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]shapes.Commands

	logger logging.Logger
	inst   *instruments
}

// New creates an empty cache. A nil cfg uses DefaultConfig().
func New(cfg *Config) *Cache {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Cache{
		entries: make(map[string]shapes.Commands),
		logger:  logging.OrNoOp(cfg.Logger),
		inst:    newInstruments(cfg.Observability),
	}
}

// Add normalizes cmds into a fresh list and stores it under key, replacing any
// previous entry. cmds is not modified. On error the cache is unchanged.
func (c *Cache) Add(key string, cmds shapes.Commands) error {
	normalized, err := cmds.Normalize()
	if err != nil {
		c.inst.recordError()
		c.logger.Warn("rejected shape", "key", key, "error", err)
		return fmt.Errorf("add %q: %w", key, err)
	}

	c.mu.Lock()
	added := c.store(key, normalized)
	c.mu.Unlock()

	c.inst.recordAdd(1, added)
	return nil
}

// AddAll adds every entry. All entries are normalized before any is stored,
// so a bad entry leaves the cache unchanged.
func (c *Cache) AddAll(entries map[string]shapes.Commands) error {
	normalized := make(map[string]shapes.Commands, len(entries))
	for key, cmds := range entries {
		n, err := cmds.Normalize()
		if err != nil {
			c.inst.recordError()
			c.logger.Warn("rejected shape batch", "key", key, "size", len(entries), "error", err)
			return fmt.Errorf("add %q: %w", key, err)
		}
		normalized[key] = n
	}

	added := 0
	c.mu.Lock()
	for key, cmds := range normalized {
		added += c.store(key, cmds)
	}
	c.mu.Unlock()

	c.inst.recordAdd(len(normalized), added)
	if c.logger.IsInfoEnabled() {
		c.logger.Info("registered shapes", "count", len(normalized), "new", added)
	}
	return nil
}

// store must be called with mu held. It returns 1 when key was not present.
func (c *Cache) store(key string, cmds shapes.Commands) int {
	_, exists := c.entries[key]
	c.entries[key] = cmds
	if c.logger.IsDebugEnabled() {
		c.logger.Debug("registered shape", "key", key, "tokens", len(cmds), "replaced", exists)
	}
	if exists {
		return 0
	}
	return 1
}

// Lookup returns the list stored under key. The list is shared; do not modify
// it. A missing key returns nil, false.
func (c *Cache) Lookup(key string) (shapes.Commands, bool) {
	c.mu.RLock()
	cmds, ok := c.entries[key]
	c.mu.RUnlock()

	c.inst.recordLookup(ok)
	return cmds, ok
}

// Remove deletes key and zeroes its stored tokens. Missing keys are ignored.
func (c *Cache) Remove(key string) {
	c.RemoveAll(key)
}

// RemoveAll removes each key. Missing keys are ignored.
func (c *Cache) RemoveAll(keys ...string) {
	removed := 0
	c.mu.Lock()
	for _, key := range keys {
		if c.drop(key) {
			removed++
		}
	}
	c.mu.Unlock()

	c.inst.recordRemove(removed)
}

// Clear removes every entry present at the time of the call.
func (c *Cache) Clear() {
	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if c.drop(key) {
			removed++
		}
	}
	c.mu.Unlock()

	c.inst.recordRemove(removed)
	if c.logger.IsInfoEnabled() {
		c.logger.Info("cleared shape cache", "removed", removed)
	}
}

// drop must be called with mu held.
func (c *Cache) drop(key string) bool {
	cmds, ok := c.entries[key]
	if !ok {
		return false
	}
	clear(cmds)
	delete(c.entries, key)
	if c.logger.IsDebugEnabled() {
		c.logger.Debug("removed shape", "key", key)
	}
	return true
}

// Len returns the number of registered shapes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns a sorted snapshot of the registered keys.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Load decodes text and adds every shape in it, returning the sorted keys it
// registered. A nil dec uses the shared default decoder.
func (c *Cache) Load(dec *shapes.Decoder, text string) ([]string, error) {
	var (
		decoded map[string]shapes.Commands
		err     error
	)
	if dec != nil {
		decoded, err = dec.Decode(text)
	} else {
		decoded, err = shapes.Decode(text)
	}
	if err != nil {
		c.inst.recordError()
		c.logger.Warn("rejected shape text", "error", err)
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := c.AddAll(decoded); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(decoded))
	for key := range decoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
