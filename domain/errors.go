package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeRateLimited  ErrorCode = "RATE_LIMITED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
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
	ErrHeroNotFound        = NewError(ErrCodeNotFound, "hero not found")
	ErrAboutNotFound       = NewError(ErrCodeNotFound, "about section not found")
	ErrProjectNotFound     = NewError(ErrCodeNotFound, "project not found")
	ErrCertificateNotFound = NewError(ErrCodeNotFound, "certificate not found")
	ErrBlogNotFound        = NewError(ErrCodeNotFound, "blog post not found")
	ErrStatNotFound        = NewError(ErrCodeNotFound, "stat not found")
	ErrSessionNotFound     = NewError(ErrCodeNotFound, "session not found")
	ErrSlugTaken           = NewError(ErrCodeConflict, "slug already in use")
	ErrUnauthorized        = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrInvalidCredentials  = NewError(ErrCodeUnauthorized, "Invalid email or password")
	ErrInvalidPayload      = NewError(ErrCodeInvalid, "invalid payload")
	ErrRateLimited         = NewError(ErrCodeRateLimited, "Too many requests. Please try again later.")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf returns the classification of err, INTERNAL when it carries none.
func CodeOf(err error) ErrorCode {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ErrCodeInternal
}
