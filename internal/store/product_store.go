package store

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryProductRepository struct {
	tbl *table[domain.Product]
	log *logrus.Logger
}

func NewMemoryProductRepository(logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		tbl: newTable[domain.Product](),
		log: logger,
	}
}

// stored strips the resolved category view; only the foreign key persists.
func stored(p *domain.Product) domain.Product {
	c := *p
	c.Category = nil
	return c
}

func (r *memoryProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	id := r.tbl.Insert(func(id int) domain.Product {
		p := stored(product)
		p.ID = id
		return p
	})
	product.ID = id
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *memoryProductRepository) GetProductByID(id int) (*domain.Product, error) {
	product, _, ok := r.tbl.Get(id)
	if !ok {
		r.log.Warnf("Product with ID %d not found", id)
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (r *memoryProductRepository) UpdateProduct(product *domain.Product) error {
	_, version, ok := r.tbl.Get(product.ID)
	if !ok {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return domain.ErrNotFound
	}

	switch r.tbl.Replace(product.ID, stored(product), version) {
	case Replaced:
		r.log.Infof("Product updated successfully with ID: %d", product.ID)
		return nil
	case ReplaceAbsent:
		r.log.Warnf("Product with ID %d removed before update could apply", product.ID)
		return domain.ErrNotFound
	default:
		if _, _, ok := r.tbl.Get(product.ID); !ok {
			return domain.ErrNotFound
		}
		r.log.Errorf("Concurrent modification detected for product ID %d", product.ID)
		return domain.ErrConflict
	}
}

func (r *memoryProductRepository) DeleteProduct(id int) (*domain.Product, error) {
	product, ok := r.tbl.Remove(id)
	if !ok {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return nil, domain.ErrNotFound
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return &product, nil
}

func (r *memoryProductRepository) ListProducts() ([]domain.Product, error) {
	products := r.tbl.List(nil)
	r.log.Infof("Retrieved %d products", len(products))
	return products, nil
}

func (r *memoryProductRepository) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	products := r.tbl.List(func(p domain.Product) bool {
		return p.CategoryID == categoryID
	})
	r.log.Infof("Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}
