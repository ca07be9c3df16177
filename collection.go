package builder

import (
	"fmt"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// Collection is the section collection manager: it owns every
// structural mutation of the ordered list (add, delete, move, reorder)
// and guarantees the dense 0..N-1 order invariant is restored and
// persisted after each one. All operations load canonical state from
// the store, apply a pure page operation, write the result back in one
// transaction, and invalidate the render cache.
type Collection struct {
	store *Store
	cache *PageCache
}

// NewCollection wires a manager over the given store and cache.
func NewCollection(store *Store, cache *PageCache) *Collection {
	return &Collection{store: store, cache: cache}
}

// List returns the canonical ordered section list.
func (c *Collection) List() ([]page.Section, error) {
	return c.store.List()
}

// Get returns one section by id.
func (c *Collection) Get(id string) (page.Section, error) {
	return c.store.Get(id)
}

// Add appends a new default section at the end of the collection and
// returns it.
func (c *Collection) Add() (page.Section, error) {
	sections, err := c.store.List()
	if err != nil {
		return page.Section{}, fmt.Errorf("builder: add section: %w", err)
	}
	updated, created := page.Append(sections)
	if err := c.commit(updated); err != nil {
		return page.Section{}, fmt.Errorf("builder: add section: %w", err)
	}
	return created, nil
}

// Delete removes a section and reindexes the remainder densely,
// preserving relative order. Unknown ids return ErrNotFound.
func (c *Collection) Delete(id string) error {
	sections, err := c.store.List()
	if err != nil {
		return fmt.Errorf("builder: delete section: %w", err)
	}
	if _, ok := page.FindByID(sections, id); !ok {
		return fmt.Errorf("builder: delete section %q: %w", id, ErrNotFound)
	}
	if err := c.commit(page.Remove(sections, id)); err != nil {
		return fmt.Errorf("builder: delete section: %w", err)
	}
	return nil
}

// Move swaps the section one step up or down. Boundary moves are
// no-ops; unknown ids return ErrNotFound.
func (c *Collection) Move(id string, dir page.Direction) error {
	sections, err := c.store.List()
	if err != nil {
		return fmt.Errorf("builder: move section: %w", err)
	}
	if _, ok := page.FindByID(sections, id); !ok {
		return fmt.Errorf("builder: move section %q: %w", id, ErrNotFound)
	}
	if err := c.commit(page.Move(sections, id, dir)); err != nil {
		return fmt.Errorf("builder: move section: %w", err)
	}
	return nil
}

// Reorder applies a drag result: remove at from, reinsert at to,
// reindex. Out-of-range positions are a no-op.
func (c *Collection) Reorder(from, to int) error {
	sections, err := c.store.List()
	if err != nil {
		return fmt.Errorf("builder: reorder sections: %w", err)
	}
	if err := c.commit(page.Reorder(sections, from, to)); err != nil {
		return fmt.Errorf("builder: reorder sections: %w", err)
	}
	return nil
}

// Update commits an edited section back into the collection. Order and
// id are never touched by content edits.
func (c *Collection) Update(sec page.Section) error {
	if err := c.store.Save(sec); err != nil {
		return fmt.Errorf("builder: update section: %w", err)
	}
	c.cache.Invalidate()
	return nil
}

func (c *Collection) commit(sections []page.Section) error {
	if err := c.store.SaveAll(sections); err != nil {
		return err
	}
	c.cache.Invalidate()
	return nil
}
