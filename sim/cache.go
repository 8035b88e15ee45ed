// SPDX-License-Identifier: MIT
// Package sim: per-model Simulator cache.

package sim

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/vecstorm/mdp"
)

// Cache maps model identity to a compiled Simulator. Concurrent Get calls for
// the same model build it at most once. Safe for concurrent use.
type Cache struct {
	opts []Option

	group singleflight.Group
	mu    sync.RWMutex
	sims  map[mdp.ID]*Simulator
	built int
}

// NewCache returns an empty cache; opts are applied to every Simulator it builds.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		opts: opts,
		sims: make(map[mdp.ID]*Simulator),
	}
}

// Get returns the Simulator for m, building it on first use. Models with equal
// contents share one Simulator.
func (c *Cache) Get(m *mdp.Model) *Simulator {
	id := m.ID()
	c.mu.RLock()
	s, ok := c.sims[id]
	c.mu.RUnlock()
	if ok {
		return s
	}

	v, _, _ := c.group.Do(id.String(), func() (any, error) {
		c.mu.RLock()
		s, ok := c.sims[id]
		c.mu.RUnlock()
		if ok {
			return s, nil
		}
		s = New(m, c.opts...)
		c.mu.Lock()
		c.sims[id] = s
		c.built++
		c.mu.Unlock()

		return s, nil
	})

	return v.(*Simulator)
}

// Len returns the number of cached simulators.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.sims)
}

// Builds returns how many simulators were constructed over the cache's lifetime.
func (c *Cache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.built
}
