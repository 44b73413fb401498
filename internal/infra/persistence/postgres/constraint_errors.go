package postgres

import (
	"strings"

	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/errors"

	"gorm.io/gorm"
)

// storageError converts a write failure into a StorageError whose details name the violated rule.
func storageError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		details += ": duplicate key"
	case isNotNullConstraintViolation(err):
		details += ": missing required column"
	case isCheckConstraintViolation(err):
		details += ": check constraint violated"
	}

	return domainerrors.NewStorageError(errors.WithStack(err), details)
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
