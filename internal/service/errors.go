package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a change is not allowed from the current state.
	ErrConflict = errors.New("conflict")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// MissingContextError is returned when an operation has no target notebook.
type MissingContextError struct {
	Field string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("missing context: %s is required", e.Field)
}

func (e *MissingContextError) Is(target error) bool { return target == ErrInvalidInput }

// PersistenceError wraps a failed create or update against the source store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// TransportError is returned when an upload fails or yields no storage reference.
// A nil Err means the upload returned without a reference.
type TransportError struct {
	SourceID string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upload of source %s produced no file path", e.SourceID)
	}
	return fmt.Sprintf("upload of source %s failed: %v", e.SourceID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrExternalService }

// ProcessingError is returned when remote document processing fails.
type ProcessingError struct {
	SourceID string
	Err      error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing of source %s failed: %v", e.SourceID, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func (e *ProcessingError) Is(target error) bool { return target == ErrExternalService }

// GenerationError is returned when remote content generation fails.
type GenerationError struct {
	NotebookID string
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation for notebook %s failed: %v", e.NotebookID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrExternalService }

// RemoteInvocationError is returned when the batched webhook call fails.
type RemoteInvocationError struct {
	Kind string
	Err  error
}

func (e *RemoteInvocationError) Error() string {
	return fmt.Sprintf("remote invocation %s failed: %v", e.Kind, e.Err)
}

func (e *RemoteInvocationError) Unwrap() error { return e.Err }

func (e *RemoteInvocationError) Is(target error) bool { return target == ErrExternalService }

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
