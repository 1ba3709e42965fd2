package model

import "strings"

// Category groups posts by name. Posts reference categories by name, not id,
// so deleting a category leaves existing posts with the old label.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryInput is the accepted shape for category creation.
type CategoryInput struct {
	Name string `json:"name"`
}

// NewCategory validates in and returns the category to store.
func NewCategory(in CategoryInput) (Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Category{}, invalid("name", "is required")
	}
	return Category{Name: name}, nil
}

// Field exposes queryable attributes by their API name.
func (c Category) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	}
	return nil, false
}
