package domain

// Category classifies a product. The set of categories is closed.
type Category string

const (
	CategoryPlush   Category = "Plush"
	CategoryApparel Category = "Apparel"
	CategoryFigure  Category = "Figure"
	CategoryHome    Category = "Home"
)

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll Category = "All"

var categories = []Category{CategoryPlush, CategoryApparel, CategoryFigure, CategoryHome}

// Categories returns the closed set of categories in display order.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// Valid reports whether c belongs to the closed set. CategoryAll is not a category.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
