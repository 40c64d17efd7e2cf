package entity

import "time"

// Category is a node in a blog's two-level taxonomy. A category either
// is a root (ParentID nil) or hangs directly under a root; deeper
// nesting is rejected at write time, so depth never needs to be stored.
type Category struct {
	ID          int64     `json:"id"`
	BlogID      int64     `json:"blog_id"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func (c *Category) SetParent(parent *Category) {
	if parent == nil {
		c.ParentID = nil
		return
	}
	id := parent.ID
	c.ParentID = &id
}

func (c *Category) Update(name, description string, parent *Category) {
	c.Name = name
	c.Description = description
	c.SetParent(parent)
}

// CategoryTree is the read view for one root and its children,
// both kept in name-ascending order.
type CategoryTree struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Children    []CategoryChild `json:"children"`
}

type CategoryChild struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
