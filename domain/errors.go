package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrProductNotFound = NewError(ErrCodeNotFound, "Product not found")
	ErrProfileNotFound = NewError(ErrCodeNotFound, "Pricing profile not found")
	ErrInvalidPayload  = NewError(ErrCodeInvalid, "invalid payload")
)

// Adjustment validation failures, checked in this order by ValidateAdjustment.
var (
	ErrInvalidBasePrice       = NewError(ErrCodeInvalid, "Based on price cannot be negative")
	ErrInvalidAdjustment      = NewError(ErrCodeInvalid, "Adjustment type or increment is not supported")
	ErrInvalidAdjustmentValue = NewError(ErrCodeInvalid, "Adjustment value cannot be negative")
	ErrPercentageOutOfRange   = NewError(ErrCodeInvalid, "Percentage adjustment cannot exceed 100%")
	ErrResultWouldBeNegative  = NewError(ErrCodeInvalid, "Adjustment would result in negative price")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
