package journal

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports required fields that were empty after trimming
// No request is sent when it is returned
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s required", strings.Join(e.Fields, " and "))
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// RequestFailure is any failed backend call: a transport error or a non-2xx status
// Statuses are not distinguished and error bodies are not parsed
type RequestFailure struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *RequestFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s failed: unexpected status %d", e.Operation, e.StatusCode)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// IsRequestFailure checks if error is a RequestFailure
func IsRequestFailure(err error) bool {
	var reqErr *RequestFailure
	return errors.As(err, &reqErr)
}

// requireFields returns a ValidationError naming every blank field
func requireFields(title, content string) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
