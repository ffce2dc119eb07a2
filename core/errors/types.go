// ABOUTME: Custom error types for the core extraction logic
// ABOUTME: Provides structured errors so strategy failures can be logged with context

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a failed attempt to download a page
type FetchError struct {
	Strategy   string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s fetch of %s failed with status %d", e.Strategy, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s fetch of %s failed: %v", e.Strategy, e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError reports a configuration value that failed validation
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExtractionError represents a failure to turn a downloaded body into text
type ExtractionError struct {
	Strategy string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Strategy, e.Message, e.Err)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Strategy, e.Message)
}

// Unwrap returns the underlying parser error
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}
