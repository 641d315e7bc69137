package models

// Collection names, one per entity (lowercased entity name).
const (
	MenuCategoryCollection = "menucategory"
	MenuItemCollection     = "menuitem"
	OrderCollection        = "order"
)

// DocumentID is the opaque identifier the persistence layer assigns to a
// document at insert time. It never appears in create payloads.
type DocumentID string

func (id DocumentID) String() string {
	return string(id)
}

// Float returns a pointer to v, for building entities with required
// numeric fields in code.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
