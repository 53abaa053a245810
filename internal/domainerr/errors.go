// Package domainerr defines the failure kinds returned by the recipe services.
//
// Services return *Error values; the HTTP layer inspects the Kind to choose a
// status code. Anything that is not an *Error is an infrastructure failure.
//
//	if errors.Is(err, domainerr.ErrConflict) {
//	    ...
//	}
package domainerr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable failure category.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindPermission Kind = "permission"
)

// Error is a domain failure with enough detail for the boundary layer to
// render a response: the kind plus the offending field or entity/id.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Entity  string `json:"entity,omitempty"`
	ID      any    `json:"id,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	case e.Entity != "" && e.ID != nil:
		return fmt.Sprintf("%s %v: %s", e.Entity, e.ID, e.Message)
	default:
		return e.Message
	}
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithDetails returns a copy carrying extra details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Sentinels for errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation error"}
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "already exists"}
	ErrPermission = &Error{Kind: KindPermission, Message: "permission denied"}
)

// Validation reports malformed or contradictory input on field.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

// NotFound reports that entity with id does not exist.
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Message: "not found"}
}

// Conflict reports a uniqueness violation against current state.
func Conflict(entity string, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: msg}
}

// Permission reports that the caller does not own the resource.
func Permission(entity string, id any) *Error {
	return &Error{Kind: KindPermission, Entity: entity, ID: id, Message: "permission denied"}
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
