package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this type and interval"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an operation refused because of the current state of an entity
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrShiftNotFound             = &NotFoundError{Entity: "shift"}
	ErrPositionNotFound          = &NotFoundError{Entity: "position"}
	ErrWorkScheduleNotFound      = &NotFoundError{Entity: "work schedule"}
	ErrEmployeeShiftNotFound     = &NotFoundError{Entity: "employee shift"}
	ErrRecurrencePatternNotFound = &NotFoundError{Entity: "recurrence pattern"}
	ErrPaymentNotFound           = &NotFoundError{Entity: "payment"}
)

// Already Exists Errors
var (
	ErrUserExists              = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrShiftExists             = &AlreadyExistsError{Entity: "shift", Context: "with this name"}
	ErrRecurrencePatternExists = &AlreadyExistsError{Entity: "recurrence pattern", Context: "with this type and rule"}
)

// State Conflict Errors
var (
	ErrRecurrencePatternInUse = &ConflictError{Message: "recurrence pattern is referenced by work schedules"}
	ErrShiftInUse             = &ConflictError{Message: "shift is referenced by employee shifts"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange    = &ValidationError{Field: "endDate", Message: "start date must not be after end date"}
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrPaymentAmountDiffer = errors.New("payment amount does not match")
	ErrPaymentConfirmed    = errors.New("payment already confirmed")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInactiveUser       = &AuthorizationError{Message: "user account is inactive"}
	ErrForbidden          = &AuthorizationError{Message: "insufficient role for this resource"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
