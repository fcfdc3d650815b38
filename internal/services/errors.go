package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError reports malformed or missing input with a message safe to
// show to the caller.
type ValidationError struct {
	Message string
}

func (validationError *ValidationError) Error() string {
	return validationError.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ConflictError carries the detail of a duplicate-state refusal, e.g. which
// earlier upload collided. errors.Is(err, ErrConflict) holds for it.
type ConflictError struct {
	Message string
}

func (conflictError *ConflictError) Error() string {
	return conflictError.Message
}

func (conflictError *ConflictError) Unwrap() error {
	return ErrConflict
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ExternalServiceError wraps a collaborator failure that must not fail the
// parent operation; callers log it and fold it into partial-success counts.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (externalError *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", externalError.Service, externalError.Err)
}

func (externalError *ExternalServiceError) Unwrap() error {
	return externalError.Err
}

// translateStoreError maps unique-constraint violations to the conflict
// taxonomy so raw storage errors never leak to callers.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return NewConflictError("record already exists")
	}
	return err
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
