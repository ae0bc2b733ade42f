package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "work schedule"}
		assert.Equal(t, "work schedule not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrShiftNotFound, ErrWorkScheduleNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to delete: %w", ErrWorkScheduleNotFound)
		assert.True(t, errors.Is(wrapped, ErrWorkScheduleNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrRecurrencePatternNotFound))
		assert.False(t, IsNotFound(ErrRecurrencePatternInUse))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "recurrence pattern already exists with this type and rule", ErrRecurrencePatternExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "shift"}
		assert.Equal(t, "shift already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrShiftExists))
		assert.False(t, IsAlreadyExists(ErrShiftNotFound))
	})
}

func TestConflictError(t *testing.T) {
	assert.Equal(t, "shift is referenced by employee shifts", ErrShiftInUse.Error())
	assert.True(t, IsConflict(ErrRecurrencePatternInUse))
	assert.True(t, IsConflict(fmt.Errorf("delete: %w", ErrShiftInUse)))
	assert.False(t, IsConflict(ErrShiftExists))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "startDate", Message: "invalid format"}
		assert.Equal(t, "validation error: startDate - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("anchorDate", "required")))
		assert.True(t, IsValidation(ErrInvalidDateRange))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.False(t, IsAuthentication(ErrForbidden))
}
