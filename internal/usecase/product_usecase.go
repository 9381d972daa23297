package usecase

import (
	"errors"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	UpdateProduct(id int, product *domain.Product) error
	DeleteProduct(id int) (*domain.Product, error)
	ListProducts() ([]domain.Product, error)
	ListProductsByCategory(categoryID int) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	resolver    *CategoryResolver
	log         *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, resolver *CategoryResolver, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: pRepo,
		resolver:    resolver,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if verr := domain.ValidateProduct(product); verr != nil {
		uc.log.Warnf("Use Case: Rejected invalid product input: %v", verr)
		return nil, verr
	}

	createdProduct, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	// References are not enforced at write time; a product may point at a
	// category that never existed or was removed. The read path degrades to
	// an absent category view instead.
	uc.resolver.Resolve(createdProduct)
	if createdProduct.Category == nil {
		uc.log.Warnf("Use Case: Product %d references missing category %d", createdProduct.ID, createdProduct.CategoryID)
	}

	uc.log.Infof("Use Case: Product '%s' created with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, domain.ErrNotFound
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	uc.resolver.Resolve(product)
	return product, nil
}

func (uc *productUseCase) UpdateProduct(id int, product *domain.Product) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return domain.ErrBadRequest
	}
	if id != product.ID {
		uc.log.Warnf("Use Case: Product update ID mismatch: path %d, body %d", id, product.ID)
		return domain.ErrBadRequest
	}
	if verr := domain.ValidateProduct(product); verr != nil {
		uc.log.Warnf("Use Case: Rejected invalid product update for ID %d: %v", id, verr)
		return verr
	}

	if err := uc.productRepo.UpdateProduct(product); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.log.Errorf("Use Case: Unreconciled concurrent update for product ID %d", id)
		} else {
			uc.log.Warnf("Use Case: Repository failed to update product ID %d: %v", id, err)
		}
		return err
	}

	uc.log.Infof("Use Case: Product updated for ID %d", id)
	return nil
}

func (uc *productUseCase) DeleteProduct(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return nil, domain.ErrNotFound
	}

	removed, err := uc.productRepo.DeleteProduct(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product deleted for ID %d", id)
	return removed, nil
}

func (uc *productUseCase) ListProducts() ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	uc.resolver.ResolveAll(products)
	return products, nil
}

// ListProductsByCategory filters by reference equality only. A category that
// is empty, removed, or never existed yields an empty sequence, not an error.
func (uc *productUseCase) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProductsByCategory(categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return nil, err
	}
	uc.resolver.ResolveAll(products)
	return products, nil
}
