// Package apperrors defines the error classes shared by the webhook pipeline,
// the entity stores and the HTTP surface.
package apperrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// ErrDuplicateRecord is returned by create-only stores when the natural key already exists.
var ErrDuplicateRecord = errors.New("duplicate record")

// AuthenticationError is a signature or secret failure on an inbound webhook.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return "authentication failed"
	}
	return e.Err.Error()
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// NotFoundError is a referenced object that could not be retrieved.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TransientDependencyError is a network, rate limit or database availability failure.
type TransientDependencyError struct {
	Op  string
	Err error
}

func (e *TransientDependencyError) Error() string {
	return fmt.Sprintf("%s: transient dependency failure: %v", e.Op, e.Err)
}

func (e *TransientDependencyError) Unwrap() error { return e.Err }

// ValidationError is a malformed payload or store input.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewAuthentication(err error) error {
	return &AuthenticationError{Err: err}
}

func NewNotFound(resource, id string, err error) error {
	return &NotFoundError{Resource: resource, ID: id, Err: err}
}

func NewTransient(op string, err error) error {
	return &TransientDependencyError{Op: op, Err: err}
}

func NewValidation(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsTransient(err error) bool {
	var target *TransientDependencyError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Classify returns a short class name suitable as a log or metric field.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAuthentication(err):
		return "authentication"
	case IsNotFound(err):
		return "not_found"
	case IsTransient(err):
		return "transient"
	case IsValidation(err):
		return "validation"
	case errors.Is(err, ErrDuplicateRecord):
		return "duplicate"
	default:
		return "internal"
	}
}

// FromDB maps a pgx error into the taxonomy. resource and id describe the row being
// read or written.
func FromDB(op, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound(resource, id, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s %s: %w", resource, id, ErrDuplicateRecord)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return NewTransient(op, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return NewTransient(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
