package store

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryCategoryRepository struct {
	tbl *table[domain.Category]
	log *logrus.Logger
}

func NewMemoryCategoryRepository(logger *logrus.Logger) domain.CategoryRepository {
	return &memoryCategoryRepository{
		tbl: newTable[domain.Category](),
		log: logger,
	}
}

func (r *memoryCategoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	id := r.tbl.Insert(func(id int) domain.Category {
		c := *category
		c.ID = id
		return c
	})
	category.ID = id
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *memoryCategoryRepository) GetCategoryByID(id int) (*domain.Category, error) {
	category, _, ok := r.tbl.Get(id)
	if !ok {
		// Absence is an expected outcome here: the resolver probes this
		// lookup for every product reference, dangling ones included.
		r.log.Debugf("Category with ID %d not found", id)
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

func (r *memoryCategoryRepository) UpdateCategory(category *domain.Category) error {
	_, version, ok := r.tbl.Get(category.ID)
	if !ok {
		r.log.Warnf("Category with ID %d not found for update", category.ID)
		return domain.ErrNotFound
	}

	switch r.tbl.Replace(category.ID, *category, version) {
	case Replaced:
		r.log.Infof("Category updated successfully with ID: %d", category.ID)
		return nil
	case ReplaceAbsent:
		r.log.Warnf("Category with ID %d removed before update could apply", category.ID)
		return domain.ErrNotFound
	default:
		// The version moved between our read and the replace. When the
		// record is gone by now the caller only cares about absence;
		// otherwise the conflict is surfaced as-is, retrying is not this
		// layer's decision.
		if _, _, ok := r.tbl.Get(category.ID); !ok {
			return domain.ErrNotFound
		}
		r.log.Errorf("Concurrent modification detected for category ID %d", category.ID)
		return domain.ErrConflict
	}
}

func (r *memoryCategoryRepository) DeleteCategory(id int) (*domain.Category, error) {
	category, ok := r.tbl.Remove(id)
	if !ok {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return nil, domain.ErrNotFound
	}
	r.log.Infof("Category deleted successfully with ID: %d", id)
	return &category, nil
}

func (r *memoryCategoryRepository) ListCategories() ([]domain.Category, error) {
	categories := r.tbl.List(nil)
	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}
