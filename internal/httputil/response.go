// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/corpassist/secrets/internal/errors"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorMapping binds a sentinel from internal/errors to its HTTP rendering. An empty
// message means the error text itself is safe to return to the caller.
type errorMapping struct {
	sentinel error
	status   int
	code     string
	message  string
}

// Order matters: the first sentinel the error wraps wins. Not found, conflict and
// forbidden messages stay generic so responses never reveal another user's secrets.
var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{apperrors.ErrNotImplemented, http.StatusNotImplemented, "not_implemented", "This operation is not supported"},
}

var internalErrorMapping = errorMapping{
	status:  http.StatusInternalServerError,
	code:    "internal_error",
	message: "An internal error occurred",
}

func mappingFor(err error) errorMapping {
	for _, m := range errorMappings {
		if apperrors.Is(err, m.sentinel) {
			return m
		}
	}
	return internalErrorMapping
}

// HandleErrorGin renders err as a JSON error response. Client errors are logged at warn
// level and server errors at error level, both with the full wrapped chain.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	m := mappingFor(err)
	message := m.message
	if message == "" {
		message = err.Error()
	}

	level := slog.LevelWarn
	if m.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logFailure(c, logger, level, "request failed",
		slog.Int("status_code", m.status),
		slog.String("error_code", m.code),
		slog.Any("error", err),
	)

	c.JSON(m.status, ErrorResponse{Error: m.code, Message: message})
}

// HandleBadRequestGin writes a 400 response for requests that could not be parsed.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	logFailure(c, logger, slog.LevelWarn, "bad request", slog.Any("error", err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes a 422 response for requests that parsed but failed
// validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	logFailure(c, logger, slog.LevelWarn, "validation failed", slog.Any("error", err))
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}

func logFailure(c *gin.Context, logger *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	if id := requestid.Get(c); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	ctx := context.Background()
	if c.Request != nil {
		ctx = c.Request.Context()
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}
