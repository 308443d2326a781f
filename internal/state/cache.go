package state

import (
	"sync"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

// Cache holds the last-known-good planning document. It is an injectable
// container rather than a process global so tests can run isolated
// instances.
type Cache struct {
	mu     sync.RWMutex
	doc    domain.Document
	loaded bool
	subs   map[int]func(domain.Document)
	nextID int
}

func NewCache() *Cache {
	return &Cache{subs: make(map[int]func(domain.Document))}
}

// Current returns the cached document and whether a document has been
// published yet.
func (c *Cache) Current() (domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc, c.loaded
}

// Replace publishes doc as the new current document and notifies
// subscribers.
func (c *Cache) Replace(doc domain.Document) {
	c.mu.Lock()
	c.doc = doc
	c.loaded = true
	subs := make([]func(domain.Document), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(doc)
	}
}

// Subscribe registers fn to run on every Replace. The returned function
// removes the subscription.
func (c *Cache) Subscribe(fn func(domain.Document)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
