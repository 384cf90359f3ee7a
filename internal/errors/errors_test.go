package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "submission"}
		assert.Equal(t, "submission not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "submission"}
		err2 := &NotFoundError{Entity: "submission"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "submission"}
		err2 := &NotFoundError{Entity: "entry"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSubmissionNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrSubmissionNotFound)))
		assert.False(t, IsNotFound(ErrNotifierDisabled))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("not a validation error", func(t *testing.T) {
		_, ok := AsValidationErrors(ErrSubmissionNotFound)
		assert.False(t, ok)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("keeps field order", func(t *testing.T) {
		var ve ValidationErrors
		ve.Add("jmeno", "bad name")
		ve.Add("psc", "bad psc")

		assert.Equal(t, []string{"bad name", "bad psc"}, ve.Messages())
		assert.True(t, ve.Has("psc"))
		assert.False(t, ve.Has("email"))
		assert.Equal(t, "validation failed: jmeno: bad name; psc: bad psc", ve.Error())
	})

	t.Run("empty list message", func(t *testing.T) {
		assert.Equal(t, "validation failed", ValidationErrors{}.Error())
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		var ve ValidationErrors
		ve.Add("email", "bad")
		wrapped := fmt.Errorf("submit: %w", ve)

		got, ok := AsValidationErrors(wrapped)
		assert.True(t, ok)
		assert.Len(t, got, 1)
	})

	t.Run("single error is promoted to a list", func(t *testing.T) {
		got, ok := AsValidationErrors(&ValidationError{Field: "telefon", Message: "bad"})
		assert.True(t, ok)
		assert.Equal(t, []string{"bad"}, got.Messages())
	})

	t.Run("other errors are not validation errors", func(t *testing.T) {
		_, ok := AsValidationErrors(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("insert submission", cause)

	assert.Equal(t, "storage error: insert submission: disk full", err.Error())
	assert.True(t, IsStorage(err))
	assert.True(t, IsStorage(fmt.Errorf("outer: %w", err)))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsStorage(cause))
	assert.Equal(t, "storage error: list", (&StorageError{Op: "list"}).Error())
}

func TestConfigurationErrors(t *testing.T) {
	assert.True(t, IsConfiguration(ErrSecretKeyNotSet))
	assert.True(t, IsConfiguration(NewConfigurationError("x")))
	assert.False(t, IsConfiguration(ErrSubmissionNotFound))
	assert.Error(t, ErrDatabaseURLMissing)
	assert.Error(t, ErrSubmissionLogMissing)
}
