package domain

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int) (*Product, error)
	// UpdateProduct replaces every field of the stored record (full replace,
	// not a partial patch). Same error contract as CategoryRepository.
	UpdateProduct(product *Product) error
	DeleteProduct(id int) (*Product, error)
	ListProducts() ([]Product, error)
	// ListProductsByCategory filters by CategoryID equality in insertion
	// order. An unknown category yields an empty slice, not an error.
	ListProductsByCategory(categoryID int) ([]Product, error)
}
