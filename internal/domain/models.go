package domain

import "github.com/shopspring/decimal"

// Category is the parent entity of the catalog. The ID is assigned by the
// store on creation and is immutable afterwards.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,min=3,max=60"`
}

// Product references a Category by ID. The Category field is a read-time
// view resolved by the product use case; it is never stored, and it stays
// nil when the referenced category no longer exists.
type Product struct {
	ID         int             `json:"id"`
	Name       string          `json:"name" validate:"required,min=3,max=60"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price" validate:"-"`
	CategoryID int             `json:"category_id" validate:"required"`
	Category   *Category       `json:"category,omitempty" validate:"-"`
}
