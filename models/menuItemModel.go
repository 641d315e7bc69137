package models

type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

type AddOn struct {
	Name  string   `json:"name" bson:"name" validate:"required"`
	Price *float64 `json:"price" bson:"price" validate:"required,gte=0"`
}

type MenuItem struct {
	Title        string   `json:"title" bson:"title" validate:"required"`
	Description  *string  `json:"description" bson:"description"`
	Price        *float64 `json:"price" bson:"price" validate:"required,gte=0"` // base price, smallest size
	CategorySlug string   `json:"category_slug" bson:"category_slug" validate:"required"`
	Image        *string  `json:"image" bson:"image"`
	Tags         []string `json:"tags" bson:"tags"`
	Sizes        []Size   `json:"sizes" bson:"sizes" validate:"omitempty,dive,oneof=S M L"`
	// Keys are size labels by convention only; they are not checked against Sizes.
	SizePriceDelta map[string]float64 `json:"size_price_delta" bson:"size_price_delta"`
	Addons         []AddOn            `json:"addons" bson:"addons" validate:"omitempty,dive"`
	Featured       bool               `json:"featured" bson:"featured"`
}

// Normalize fills the defaults a menu item carries when fields are omitted.
func (m *MenuItem) Normalize() {
	if m.Tags == nil {
		m.Tags = []string{}
	}
}
