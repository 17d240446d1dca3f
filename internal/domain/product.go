package domain

import "github.com/shopspring/decimal"

// Product describes a catalogue item. Products are immutable once defined.
type Product struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Category    Category
	Price       decimal.Decimal
}

func NewProduct(id int64, slug, name string, category Category, price decimal.Decimal, description string) Product {
	return Product{
		ID:          id,
		Slug:        slug,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
	}
}
