package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidationFailed = errors.New("validation failed")
)

// NotFoundError reports a missing entity and matches ErrNotFound
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ValidationFailedError carries the field errors of a rejected input
type ValidationFailedError struct {
	Cause error
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Cause)
}

func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationFailedError) Unwrap() error {
	return e.Cause
}
