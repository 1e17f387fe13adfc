package common

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration for configuration-related errors
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeValidation for validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeStorage for local state/persistence errors
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeNetwork for network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeJira for Jira API errors
	ErrorTypeJira ErrorType = "jira"
	// ErrorTypeCalendar for Google Calendar errors
	ErrorTypeCalendar ErrorType = "calendar"
	// ErrorTypeInternal for internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// ToolError represents a structured error with context
type ToolError struct {
	Type      ErrorType              `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Cause     error                  `json:"-"`
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Type, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *ToolError) WithContext(key string, value interface{}) *ToolError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *ToolError) WithCause(cause error) *ToolError {
	e.Cause = cause
	return e
}

// NewError creates a new ToolError
func NewError(errorType ErrorType, code, message string) *ToolError {
	return &ToolError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(code, message string) *ToolError {
	return NewError(ErrorTypeConfiguration, code, message)
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *ToolError {
	return NewError(ErrorTypeValidation, code, message)
}

// NewStorageError creates a local state error
func NewStorageError(code, message string) *ToolError {
	return NewError(ErrorTypeStorage, code, message)
}

// NewNetworkError creates a network error
func NewNetworkError(code, message string) *ToolError {
	return NewError(ErrorTypeNetwork, code, message)
}

// NewJiraError creates a Jira API error
func NewJiraError(code, message string) *ToolError {
	return NewError(ErrorTypeJira, code, message)
}

// NewCalendarError creates a Google Calendar error
func NewCalendarError(code, message string) *ToolError {
	return NewError(ErrorTypeCalendar, code, message)
}

// WrapError wraps an existing error with ToolError context
func WrapError(err error, errorType ErrorType, code, message string) *ToolError {
	return &ToolError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Cause:     err,
	}
}
