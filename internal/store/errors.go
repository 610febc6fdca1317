package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Reason is a stable code identifying why a storage operation failed.
// The API layer maps reasons to client-facing statuses; raw driver
// errors never cross the store boundary.
type Reason string

const (
	ReasonDuplicate  Reason = "duplicate"
	ReasonForeignKey Reason = "foreign_key"
	ReasonConnection Reason = "connection"
)

// StorageError wraps a persistence failure with a stable reason code.
type StorageError struct {
	Reason Reason
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Reason, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Reason == ReasonDuplicate
}

// normalize converts a GORM/driver error into a StorageError. Relies on
// gorm.Config{TranslateError: true} so constraint violations are
// recognized uniformly across dialects.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &StorageError{Reason: ReasonDuplicate, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &StorageError{Reason: ReasonForeignKey, Err: err}
	}
	return &StorageError{Reason: ReasonConnection, Err: err}
}
