// Package apperrors carries the error taxonomy every store operation
// reports through: validation failures, missing directly-addressed
// entities, broken references discovered by the database, and unique
// constraint violations. Errors are never swallowed; each one reaches
// the caller tagged with its kind.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies a failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindForeignKey
	KindUniqueness
	KindInternal
)

// Error is the single error type returned by the stores. Entity names
// what the failure is about ("patient", "doctor", "appointment", ...)
// so callers can tell a missing patient from a missing doctor.
type Error struct {
	Kind   Kind
	Entity string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the client-facing text, without the wrapped cause.
func (e *Error) Message() string {
	return e.Msg
}

// HTTPStatus maps the kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForeignKey:
		return http.StatusUnprocessableEntity
	case KindUniqueness:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports input that failed schema-level checks.
func Validation(msg string, err error) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Err: err}
}

// NotFound reports a directly-addressed entity that does not exist.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Msg: entity + " not found"}
}

// ForeignKey reports a reference to a related entity that the database
// could not resolve.
func ForeignKey(entity string, err error) *Error {
	return &Error{
		Kind:   KindForeignKey,
		Entity: entity,
		Msg:    fmt.Sprintf("%s references a related record that does not exist", entity),
		Err:    err,
	}
}

// Uniqueness reports a violated unique constraint.
func Uniqueness(entity string, err error) *Error {
	return &Error{
		Kind:   KindUniqueness,
		Entity: entity,
		Msg:    fmt.Sprintf("%s violates a uniqueness constraint", entity),
		Err:    err,
	}
}

// Internal wraps an unclassified failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// FromDB classifies a gorm error for the given entity. It relies on
// the drivers' translated sentinel errors, so it behaves the same on
// postgres and sqlite.
func FromDB(entity string, err error) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ForeignKey(entity, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Uniqueness(entity, err)
	default:
		return Internal(err)
	}
}

// KindOf extracts the kind from any error, or KindInternal if the
// error did not originate here.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a NotFound for the given entity.
func IsNotFound(err error, entity string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound && appErr.Entity == entity
}
