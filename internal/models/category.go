// ABOUTME: Task category tag: a few well-known values plus user-defined text.
// ABOUTME: Label and icon lookups are total and fall back for custom tags.
package models

import (
	"errors"
	"strings"
)

// Category is an open task tag. Values outside DefaultCategories are user-defined.
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryKidRelated Category = "kid-related"
	CategoryWork       Category = "work"
	CategorySelf       Category = "self"
)

// DefaultCategories are always available, in this order, ahead of custom ones.
var DefaultCategories = []Category{CategoryGeneral, CategoryKidRelated, CategoryWork, CategorySelf}

var categoryIcons = map[Category]string{
	CategoryGeneral:    "list",
	CategoryKidRelated: "child_care",
	CategoryWork:       "work",
	CategorySelf:       "favorite",
}

// CustomCategoryIcon is used for any user-defined category.
const CustomCategoryIcon = "label"

// IsDefault reports whether c is one of the built-in categories.
func (c Category) IsDefault() bool {
	_, ok := categoryIcons[c]
	return ok
}

// Icon returns the icon name for c.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return CustomCategoryIcon
}

// Label returns a display label. Built-ins are title-cased, custom text is shown as typed.
func (c Category) Label() string {
	if !c.IsDefault() {
		return string(c)
	}
	parts := strings.Split(string(c), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ValidateCategory rejects blank category names.
func ValidateCategory(c Category) error {
	if strings.TrimSpace(string(c)) == "" {
		return errors.New("category name cannot be blank")
	}
	return nil
}
