// Package checklist persists packing-list progress: one item-to-checked map
// per category.
package checklist

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/storage"
)

// keyPrefix namespaces checklist maps in storage.
const keyPrefix = "checklist_"

// Key is the storage key for a category.
func Key(category string) string {
	return keyPrefix + category
}

// Checklist reads and writes completion maps. Toggles are serialized so
// concurrent toggles in one category do not lose updates.
type Checklist struct {
	store storage.ChecklistStore
	mu    sync.Mutex
}

// New creates a Checklist over store.
func New(store storage.ChecklistStore) *Checklist {
	return &Checklist{store: store}
}

// Load returns the saved map for category. Missing means nothing checked.
func (c *Checklist) Load(ctx context.Context, category string) (map[string]bool, error) {
	checked, err := c.store.LoadChecklist(ctx, Key(category))
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist %s: %w", category, err)
	}
	if checked == nil {
		checked = map[string]bool{}
	}
	return checked, nil
}

// Save replaces the saved map for category.
func (c *Checklist) Save(ctx context.Context, category string, checked map[string]bool) error {
	if err := c.store.SaveChecklist(ctx, Key(category), checked); err != nil {
		return fmt.Errorf("failed to save checklist %s: %w", category, err)
	}
	return nil
}

// Toggle flips one item and persists the whole map. It returns the new value.
func (c *Checklist) Toggle(ctx context.Context, category, item string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	checked, err := c.Load(ctx, category)
	if err != nil {
		return false, err
	}
	checked[item] = !checked[item]
	if err := c.Save(ctx, category, checked); err != nil {
		return false, err
	}
	return checked[item], nil
}

// Progress counts the category's items that are checked. Saved entries for
// items no longer in the category are ignored.
func Progress(category models.ChecklistCategory, checked map[string]bool) (done, total int) {
	for _, item := range category.Items {
		if checked[item.ID] {
			done++
		}
	}
	return done, len(category.Items)
}
