package usecase

import "catalog_service/internal/domain"

// CategoryResolver stitches product-to-category references on the read
// path. Resolution is always an explicit call, never a side effect of
// fetching a product.
type CategoryResolver struct {
	categories domain.CategoryRepository
}

func NewCategoryResolver(repo domain.CategoryRepository) *CategoryResolver {
	return &CategoryResolver{categories: repo}
}

// Resolve attaches the referenced category to the product. A dangling
// reference leaves the view absent; it is not an error.
func (r *CategoryResolver) Resolve(product *domain.Product) {
	category, err := r.categories.GetCategoryByID(product.CategoryID)
	if err != nil {
		product.Category = nil
		return
	}
	product.Category = category
}

// ResolveAll eagerly attaches categories to every product so list callers
// never do follow-up lookups. Lookups are memoized per call.
func (r *CategoryResolver) ResolveAll(products []domain.Product) {
	seen := make(map[int]*domain.Category)
	for i := range products {
		id := products[i].CategoryID
		category, ok := seen[id]
		if !ok {
			category, _ = r.categories.GetCategoryByID(id)
			seen[id] = category
		}
		products[i].Category = category
	}
}
