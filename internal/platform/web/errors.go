// Package web carries the HTTP-facing conventions shared by every handler:
// the response envelope, the application error taxonomy, the echo error
// handler that maps errors onto the envelope, and request validation.
package web

import "net/http"

// Error is an application error carrying the HTTP status and machine code it
// maps to at the boundary. Services return these; the error handler
// translates them into the error envelope.
type Error struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *Error) Error() string { return e.Message }

// NotFound reports that the named resource does not exist (404).
func NotFound(resource string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: resource + " não encontrado(a)",
	}
}

// Conflict reports a state collision such as a double booking or an
// overlapping agenda (409).
func Conflict(message string) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: message,
	}
}

// Validation reports a semantically invalid request (422).
func Validation(message string) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// ValidationDetails is Validation with per-field details attached.
func ValidationDetails(message string, details interface{}) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}
}

// Forbidden reports an operation the current state does not allow (403).
func Forbidden(message string) *Error {
	return &Error{
		Status:  http.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: message,
	}
}

// Internal is the generic 500 error surfaced when nothing more specific
// applies. The underlying cause is logged, never sent to the client.
func Internal() *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "Erro interno do servidor",
	}
}
