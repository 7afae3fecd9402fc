package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotPermitted indicates the caller is authenticated but lacks
	// the right to perform the operation.
	ErrNotPermitted = errors.New("not permitted")
	// ErrDuplicateReview indicates the user has already reviewed the
	// book; editing is the endorsed recovery path.
	ErrDuplicateReview = errors.New("review already exists for this book")
	// ErrWrongPassword indicates the supplied current password did not
	// match during a password change.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// ValidationError reports every violated field constraint at once, so a
// caller can surface all problems in a single round trip.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	e.Fields[field] = message
}

// orNil returns the error if any field was recorded, nil otherwise.
// Returning the concrete type directly would make the nil interface
// check at call sites unreliable.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidationError unwraps err into target if it is a *ValidationError,
// mirroring the errors.As calling convention.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}
