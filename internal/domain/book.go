// Package domain contains the core business entities for the Shelfmark catalog.
package domain

// Book represents a single catalog record.
//
// ID is assigned exclusively by the store at creation time and is immutable
// afterwards. Text fields are persisted in entity-escaped form; the escaped
// form is what gets echoed back to clients.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// BookUpdate carries a partial set of writable fields. Nil fields were not
// supplied by the caller and must leave the stored value untouched.
type BookUpdate struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Description == nil && u.Quantity == nil
}

// Apply copies the supplied fields onto the book. Omitted fields keep their
// prior values.
func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.Quantity != nil {
		b.Quantity = *u.Quantity
	}
}
