package domain

import "github.com/shopspring/decimal"

var catalog = []Product{
	NewProduct(1, "pikachu-plush", "Pikachu Plush", CategoryPlush,
		decimal.RequireFromString("19.99"),
		"A soft Pikachu plush perfect for cuddling or display."),
	NewProduct(2, "eevee-hoodie", "Eevee Hoodie", CategoryApparel,
		decimal.RequireFromString("39.99"),
		"A cosy Eevee hoodie for Trainers of all ages."),
	NewProduct(3, "charizard-figure", "Charizard Figure", CategoryFigure,
		decimal.RequireFromString("29.99"),
		"A detailed Charizard figure for collectors and fans."),
	NewProduct(4, "pokeball-mug", "Poké Ball Mug", CategoryHome,
		decimal.RequireFromString("14.99"),
		"A sturdy mug inspired by the iconic Poké Ball design."),
	NewProduct(5, "gengar-beanie", "Gengar Beanie", CategoryApparel,
		decimal.RequireFromString("24.99"),
		"A playful Gengar beanie to keep you warm in style."),
	NewProduct(6, "bulbasaur-planter", "Bulbasaur Planter", CategoryHome,
		decimal.RequireFromString("21.99"),
		"A charming Bulbasaur planter for succulents and small plants."),
}

// Catalog returns a copy of the static product catalogue in display order.
func Catalog() []Product {
	res := make([]Product, len(catalog))
	copy(res, catalog)
	return res
}

// ProductByID looks a product up in the static catalogue.
func ProductByID(id int64) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
