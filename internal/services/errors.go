package services

import (
	"errors"
	"fmt"
)

var (
	ErrExtraction      = errors.New("failed to extract document text")
	ErrCompletion      = errors.New("failed to complete prompt")
	ErrInputValidation = errors.New("invalid run input")
	ErrNoText          = errors.New("no text content found")
	ErrUnsupportedType = errors.New("unsupported document type")
)

// ExtractionError is terminal for one document only.
type ExtractionError struct {
	DocumentName string
	Cause        error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.DocumentName, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// CompletionError is terminal for one document only. StatusCode is set when
// the model service answered with an API error.
type CompletionError struct {
	DocumentName string
	StatusCode   int
	Cause        error
}

func (e *CompletionError) Error() string {
	if e.DocumentName == "" {
		return fmt.Sprintf("model API error: %v", e.Cause)
	}
	return fmt.Sprintf("model API error for %s: %v", e.DocumentName, e.Cause)
}

func (e *CompletionError) Unwrap() error {
	return e.Cause
}

func (e *CompletionError) Is(target error) bool {
	return target == ErrCompletion
}

// InputValidationError rejects a whole run before any external call.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInputValidation, e.Field, e.Reason)
}

func (e *InputValidationError) Unwrap() error {
	return ErrInputValidation
}
