package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorBody is the uniform error response body.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail is the error portion of the envelope.
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes a 200 success envelope with a human-readable message.
func OKMessage(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// OKPaged writes a 200 success envelope with pagination metadata alongside
// the data.
func OKPaged(c echo.Context, data interface{}, meta interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

// Created writes a 201 success envelope.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}
