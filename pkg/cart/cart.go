// Package cart implements the zip cart: a session-persisted, ordered,
// path-deduplicated selection of assets and the best-effort archive
// assembly that bundles them into a single download.
package cart

import (
	"log"

	"asset-browser/pkg/manifest"
	"asset-browser/pkg/models"
)

// Store persists the cart between page loads of one browsing session.
type Store interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// Cart is the selection state. Items keep insertion order and are
// unique by normalized path. Cart entries are never validated against
// the manifest at add time; a stale path simply fails (and is skipped)
// at zip time.
type Cart struct {
	items []models.CartItem
	store Store
}

// New rehydrates a cart from the store. A store read failure is logged
// and treated as an empty cart; persistence trouble is never fatal.
func New(store Store) *Cart {
	c := &Cart{store: store}
	if store == nil {
		return c
	}
	items, err := store.Load()
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		return c
	}
	c.items = items
	return c
}

// Items returns the cart content in insertion order.
func (c *Cart) Items() []models.CartItem { return c.items }

// Len returns the number of items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Contains reports whether the path is already in the cart.
func (c *Cart) Contains(path string) bool {
	return c.indexOf(path) >= 0
}

// Add appends an item, returning false without side effects when the
// path is already present. A true return is the caller's cue to open
// the cart panel.
func (c *Cart) Add(path, name string) bool {
	if c.Contains(path) {
		return false
	}
	c.items = append(c.items, models.CartItem{Path: path, Name: name})
	c.persist()
	return true
}

// Remove drops the item with the given path. Removing an absent path is
// a no-op.
func (c *Cart) Remove(path string) {
	idx := c.indexOf(path)
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.persist()
}

func (c *Cart) indexOf(path string) int {
	for i, item := range c.items {
		if manifest.SamePath(item.Path, path) {
			return i
		}
	}
	return -1
}

func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.items); err != nil {
		log.Printf("Error saving cart: %v", err)
	}
}
