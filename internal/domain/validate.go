package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCategory checks the field constraints of a category input.
// A nil return means the value may cross into the store layer.
func ValidateCategory(c *Category) *ValidationError {
	return collect(validate.Struct(c))
}

// ValidateProduct checks the field constraints of a product input. Price is
// checked in code because validator tags cannot compare decimals.
func ValidateProduct(p *Product) *ValidationError {
	verr := collect(validate.Struct(p))
	if !p.Price.GreaterThan(decimal.Zero) {
		if verr == nil {
			verr = &ValidationError{}
		}
		verr.Fields = append(verr.Fields, FieldError{
			Field:   "price",
			Message: "must be greater than zero",
		})
	}
	return verr
}

func collect(err error) *ValidationError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "input", Message: err.Error()}}}
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return "must be greater than zero"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
