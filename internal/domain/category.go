package domain

type CategoryRepository interface {
	CreateCategory(category *Category) (*Category, error)
	GetCategoryByID(id int) (*Category, error)
	// UpdateCategory replaces every field of the stored record. It returns
	// ErrNotFound when the id has no live record and ErrConflict when a
	// concurrent writer changed the record between read and replace.
	UpdateCategory(category *Category) error
	// DeleteCategory retires the id permanently and returns the removed record.
	DeleteCategory(id int) (*Category, error)
	ListCategories() ([]Category, error)
}
