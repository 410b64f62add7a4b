// internal/common/errors/errors.go

// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound    ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeParticipantNotFound ErrorCode = "PARTICIPANT_NOT_FOUND"
	ErrCodeAlreadyRegistered   ErrorCode = "ALREADY_REGISTERED"

	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeSeedInvalid      ErrorCode = "SEED_INVALID"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Message is what
// the client sees in the response detail; Details stays in the logs.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError creates the not-found error for an unknown
// activity name.
func NewActivityNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", name),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError creates the duplicate-signup error.
func NewAlreadyRegisteredError(name, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadyRegistered,
		Message:   "Student is already signed up for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", name, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewParticipantNotFoundError creates the error for removing an email that is
// not on the roster.
func NewParticipantNotFoundError(name, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeParticipantNotFound,
		Message:   "Participant not found in this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", name, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingParameterError creates the error for a required query parameter
// that was not supplied.
func NewMissingParameterError(param string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingParameter,
		Message:   fmt.Sprintf("%s query parameter is required", param),
		Details:   fmt.Sprintf("parameter: %s", param),
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedInvalidError creates the startup error for a seed file that failed
// validation.
func NewSeedInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSeedInvalid,
		Message:   "Activity seed data is invalid",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// httpStatusMapping maps internal error codes to HTTP status codes. Each code
// maps deterministically to exactly one status/message pair.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound:    http.StatusNotFound,
	ErrCodeParticipantNotFound: http.StatusNotFound,
	ErrCodeAlreadyRegistered:   http.StatusBadRequest,
	ErrCodeMissingParameter:    http.StatusBadRequest,
	ErrCodeSeedInvalid:         http.StatusInternalServerError,
	ErrCodeInternal:            http.StatusInternalServerError,
}

// HTTPStatus returns the response status for an error code. Unknown codes are
// treated as internal failures.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
