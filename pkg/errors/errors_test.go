package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyDomainEncodesCourseID(t *testing.T) {
	err := EmptyDomain("c1")
	assert.Equal(t, "empty_domain:c1", err.Code)
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrInternal.Code, "solve failed")
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestFromErrorPassesThroughTypedError(t *testing.T) {
	got := FromError(ErrValidation)
	assert.Same(t, ErrValidation, got)
}

func TestFromErrorWrapsUnknownErrorAsInternal(t *testing.T) {
	got := FromError(errors.New("unexpected"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Contains(t, got.Error(), "unexpected")
}

func TestNilErrorStringsDoNotPanic(t *testing.T) {
	var err *Error
	assert.Equal(t, "<nil>", err.Error())
	assert.Nil(t, err.Unwrap())
}
