// ABOUTME: Category operations merging built-in categories with user-added ones.
// ABOUTME: Names are compared exactly and case-sensitively.
package gateway

import (
	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

// CustomCategories returns the user-added categories.
func (g *Gateway) CustomCategories() []models.Category {
	return LoadAll[models.Category](g, storage.KeyCustomCategories)
}

// AllCategories returns the defaults followed by the custom categories.
func (g *Gateway) AllCategories() []models.Category {
	all := append([]models.Category{}, models.DefaultCategories...)
	return append(all, g.CustomCategories()...)
}

// AddCustomCategory appends name unless it is already a default or custom
// category. added reports whether anything was written.
func (g *Gateway) AddCustomCategory(name models.Category) (added bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	custom, err := load[models.Category](g, storage.KeyCustomCategories)
	if err != nil {
		return false, err
	}
	if name.IsDefault() {
		return false, nil
	}
	for _, c := range custom {
		if c == name {
			return false, nil
		}
	}
	if err := save(g, storage.KeyCustomCategories, append(custom, name)); err != nil {
		return false, err
	}
	return true, nil
}
