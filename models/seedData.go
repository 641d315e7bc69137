package models

// SeedCategories is the reference category set loaded by the seed operation.
func SeedCategories() []MenuCategory {
	return []MenuCategory{
		{Name: "Cosmic Burgers", Slug: "burgers", Emoji: String("🍔"), Color: String("rose"), Featured: true},
		{Name: "Astro Fries", Slug: "fries", Emoji: String("🍟"), Color: String("amber"), Featured: true},
		{Name: "Rocket Shakes", Slug: "shakes", Emoji: String("🥤"), Color: String("violet"), Featured: true},
		{Name: "Starlite Coffee", Slug: "coffee", Emoji: String("☕"), Color: String("stone"), Featured: true},
		{Name: "Nebula Treats", Slug: "treats", Emoji: String("🍩"), Color: String("pink"), Featured: false},
	}
}

// SeedItems is the reference menu loaded by the seed operation. Items are
// unique by title.
func SeedItems() []MenuItem {
	return []MenuItem{
		{
			Title:          "Meteor Mac",
			Description:    String("Double patty, comet sauce, star pickles"),
			Price:          Float(6.99),
			CategorySlug:   "burgers",
			Tags:           []string{"popular"},
			Sizes:          []Size{SizeSmall, SizeMedium, SizeLarge},
			SizePriceDelta: map[string]float64{"M": 1.0, "L": 2.0},
			Featured:       true,
		},
		{
			Title:          "Lunar Crisps",
			Description:    String("Shoestring fries dusted with moon salt"),
			Price:          Float(2.99),
			CategorySlug:   "fries",
			Tags:           []string{"vegan"},
			Sizes:          []Size{SizeSmall, SizeMedium, SizeLarge},
			SizePriceDelta: map[string]float64{"M": 0.7, "L": 1.4},
		},
		{
			Title:          "Milky Way Shake",
			Description:    String("Vanilla base with galaxy swirl"),
			Price:          Float(4.49),
			CategorySlug:   "shakes",
			Sizes:          []Size{SizeMedium, SizeLarge},
			SizePriceDelta: map[string]float64{"L": 0.8},
		},
		{
			Title:          "Supernova Latte",
			Description:    String("Bold espresso with stardust foam"),
			Price:          Float(3.99),
			CategorySlug:   "coffee",
			Sizes:          []Size{SizeSmall, SizeMedium, SizeLarge},
			SizePriceDelta: map[string]float64{"M": 0.6, "L": 1.1},
		},
		{
			Title:        "Comet Donut",
			Description:  String("Glazed ring with meteor crumble"),
			Price:        Float(1.99),
			CategorySlug: "treats",
			Tags:         []string{"sweet"},
			Featured:     true,
		},
	}
}
