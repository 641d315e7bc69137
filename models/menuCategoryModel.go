package models

type MenuCategory struct {
	Name     string  `json:"name" bson:"name" validate:"required"`
	Slug     string  `json:"slug" bson:"slug" validate:"required,slug"`
	Emoji    *string `json:"emoji" bson:"emoji"`
	Color    *string `json:"color" bson:"color"` // UI color hint, e.g. "rose"
	Featured bool    `json:"featured" bson:"featured"`
}
