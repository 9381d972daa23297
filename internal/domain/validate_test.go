package domain_test

import (
	"strings"
	"testing"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategoryBounds(t *testing.T) {
	assert.Nil(t, domain.ValidateCategory(&domain.Category{Name: "Gás"}))
	assert.Nil(t, domain.ValidateCategory(&domain.Category{Name: strings.Repeat("a", 60)}))

	verr := domain.ValidateCategory(&domain.Category{Name: strings.Repeat("a", 61)})
	require.NotNil(t, verr)
	assert.Equal(t, "name", verr.Fields[0].Field)

	verr = domain.ValidateCategory(&domain.Category{})
	require.NotNil(t, verr)
	assert.Equal(t, "this field is required", verr.Fields[0].Message)
}

func TestValidateProductCollectsAllFieldErrors(t *testing.T) {
	verr := domain.ValidateProduct(&domain.Product{})
	require.NotNil(t, verr)

	fields := make(map[string]string, len(verr.Fields))
	for _, fe := range verr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "category_id")
	assert.Equal(t, "must be greater than zero", fields["price"])
}

func TestValidateProductAcceptsValid(t *testing.T) {
	verr := domain.ValidateProduct(&domain.Product{
		Name:       "Sabão",
		Quantity:   12,
		Price:      decimal.NewFromFloat(8.50),
		CategoryID: 1,
	})
	assert.Nil(t, verr)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "name", Message: "this field is required"},
	}}
	assert.Equal(t, "validation failed: name: this field is required", verr.Error())
}
