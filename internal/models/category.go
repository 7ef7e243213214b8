package models

// Category is a display label that transactions and commitments reference.
// Names are unique; deletion is blocked while transactions reference the category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntityID returns the record key.
func (c *Category) EntityID() string { return c.ID }

// SetEntityID assigns the record key.
func (c *Category) SetEntityID(id string) { c.ID = id }
