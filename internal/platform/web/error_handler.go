package web

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const pgUniqueViolation = "23505"

// ErrorHandler returns an echo HTTPErrorHandler that maps every error onto
// the error envelope. Application errors keep their status and code; unique
// constraint violations from Postgres become 409; anything unrecognized is
// logged and surfaced as a generic 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "Erro interno do servidor",
		}

		var appErr *Error
		var pgErr *pgconn.PgError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			detail.Code = appErr.Code
			detail.Message = appErr.Message
			detail.Details = appErr.Details

		case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
			status = http.StatusConflict
			detail.Code = "CONFLICT"
			detail.Message = "Registro já existe"

		case errors.As(err, &httpErr):
			status = httpErr.Code
			detail.Code = codeForStatus(status)
			if msg, ok := httpErr.Message.(string); ok {
				detail.Message = msg
			} else {
				detail.Message = http.StatusText(status)
			}

		default:
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		writeErr := c.JSON(status, ErrorBody{Success: false, Error: detail})
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}
