package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrAuthNotConfigured = errors.New("authentication not configured")
	ErrInvalidPassword   = errors.New("invalid password")
)

// ValidationError reports caller input that failed a check. Fields lists the
// offending request fields in the order they were checked.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

func invalidField(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Fields:  []string{field},
		Message: fmt.Sprintf(format, args...),
	}
}

// UpstreamError wraps a failure of the database or a recognition provider.
// Op names the failed operation for logs; clients only see a generic message.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Op: op, Err: err}
}

// dbError maps gorm's not-found onto ErrNotFound and wraps everything else.
func dbError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return upstream(op, err)
}
