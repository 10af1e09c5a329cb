package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("operation not permitted")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrStorage      = errors.New("storage failure")
	ErrNotification = errors.New("notification failed")
	ErrInvalidURL   = errors.New("invalid video url")
)

// ValidationError is a user-correctable input error tied to a field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StorageError wraps a persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NotificationError reports a failed delivery. It never fails the operation
// that triggered it.
type NotificationError struct {
	Recipient string
	Kind      NotificationKind
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s (%s): %v", e.Recipient, e.Kind, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

func (e *NotificationError) Is(target error) bool { return target == ErrNotification }
