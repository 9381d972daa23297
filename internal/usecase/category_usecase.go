package usecase

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	GetCategoryByID(id int) (*domain.Category, error)
	UpdateCategory(id int, category *domain.Category) error
	DeleteCategory(id int) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if verr := domain.ValidateCategory(category); verr != nil {
		uc.log.Warnf("Use Case: Rejected invalid category input: %v", verr)
		return nil, verr
	}

	createdCategory, err := uc.categoryRepo.CreateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, domain.ErrNotFound
	}
	return uc.categoryRepo.GetCategoryByID(id)
}

// UpdateCategory applies full-replace semantics: every stored field takes
// the incoming value. The path id must name the same record as the body.
func (uc *categoryUseCase) UpdateCategory(id int, category *domain.Category) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid category ID: %d", id)
		return domain.ErrBadRequest
	}
	if id != category.ID {
		uc.log.Warnf("Use Case: Category update ID mismatch: path %d, body %d", id, category.ID)
		return domain.ErrBadRequest
	}
	if verr := domain.ValidateCategory(category); verr != nil {
		uc.log.Warnf("Use Case: Rejected invalid category update for ID %d: %v", id, verr)
		return verr
	}

	if err := uc.categoryRepo.UpdateCategory(category); err != nil {
		uc.log.Warnf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category updated for ID %d", id)
	return nil
}

func (uc *categoryUseCase) DeleteCategory(id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid category ID: %d", id)
		return nil, domain.ErrNotFound
	}

	removed, err := uc.categoryRepo.DeleteCategory(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category deleted for ID %d", id)
	return removed, nil
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	return categories, nil
}
