package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the referenced id has no live record.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest is returned for structurally inconsistent requests,
	// such as a path id that does not match the body id.
	ErrBadRequest = errors.New("bad request")

	// ErrConflict is returned when an optimistic-concurrency replace failed
	// but the record still exists. Callers must not retry silently; the
	// retry policy belongs to whoever issued the request.
	ErrConflict = errors.New("record was modified concurrently")
)

// FieldError carries one field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors of a rejected input. No
// mutation happens when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
