package interview

import (
	"errors"
	"fmt"
)

// Error types shared by the interview services. Handlers map these to HTTP
// status codes at the request boundary.

// ValidationError represents missing or malformed request input
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error for field '%s': %s (caused by: %v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NotFoundError represents an identifier that does not resolve to a record
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// GenerationError represents a failed provider call or an unparseable
// provider response
type GenerationError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error [%s]: %s (caused by: %v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error [%s]: %s", e.Stage, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Generation error stages
const (
	GenerationStageRequest = "request"
	GenerationStageParse   = "parse"
)

// NewGenerationRequestError creates an error for a failed provider call
func NewGenerationRequestError(message string, cause error) *GenerationError {
	return &GenerationError{
		Stage:   GenerationStageRequest,
		Message: message,
		Cause:   cause,
	}
}

// NewGenerationParseError creates an error for an unparseable provider response
func NewGenerationParseError(message string, cause error) *GenerationError {
	return &GenerationError{
		Stage:   GenerationStageParse,
		Message: message,
		Cause:   cause,
	}
}

// StorageError represents a failed persistence operation
type StorageError struct {
	Operation string
	Resource  string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error during %s on %s: %v", e.Operation, e.Resource, e.Cause)
	}
	return fmt.Sprintf("storage error during %s on %s", e.Operation, e.Resource)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new storage error
func NewStorageError(operation, resource string, cause error) *StorageError {
	return &StorageError{
		Operation: operation,
		Resource:  resource,
		Cause:     cause,
	}
}

// Predicates used by handlers for status code mapping

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsGeneration reports whether err is a GenerationError
func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
