// Package errors provides the engine's typed error vocabulary, the error
// slugs spec.md §7 names surfacing as the Code field on GenerationResult.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a typed domain error carrying the stable slug spec.md's
// boundary schema puts in GenerationResult.Error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for the failure slugs spec.md §7 names.
var (
	ErrNoCoursesSelected = New("no_courses_selected", "no courses matched the requested selection")
	ErrNoFacultySelected = New("no_faculty_selected", "no faculty matched the requested selection")
	ErrValidation        = New("validation", "request failed validation")
	ErrInternal          = New("internal", "internal engine error")
)

// EmptyDomain builds the empty_domain:<course_id> error spec.md §7 names.
func EmptyDomain(courseID string) *Error {
	return New(fmt.Sprintf("empty_domain:%s", courseID), fmt.Sprintf("course %s has no feasible schedule slot", courseID))
}

// FromError normalizes any error into an *Error, defaulting to internal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, err.Error())
}
