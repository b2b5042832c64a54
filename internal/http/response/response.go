// Package response provides standardized HTTP response formatting and error handling utilities.
//
// Successful responses carry the payload directly. Failures are always a
// JSON object with a single "error" string; nothing else leaks to clients.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	"github.com/shelfmarkapp/shelfmark-server/internal/apperr"
)

// ErrorBody is the shape of every failure response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code using json/v2.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.MarshalWrite(w, data); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// OK writes a successful JSON response (200 OK).
func OK(w http.ResponseWriter, data any, logger *slog.Logger) {
	JSON(w, http.StatusOK, data, logger)
}

// Created writes a created response (201 Created).
func Created(w http.ResponseWriter, data any, logger *slog.Logger) {
	JSON(w, http.StatusCreated, data, logger)
}

// NoContent writes a no content response (204 No Content).
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	JSON(w, status, ErrorBody{Error: message}, logger)
}

// BadRequest writes a 400 Bad Request response.
func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, logger)
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusUnauthorized, message, logger)
}

// Forbidden writes a 403 Forbidden response.
func Forbidden(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusForbidden, message, logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, logger)
}

// InternalError writes a 500 Internal Server Error response.
func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, logger)
}

// HandleError writes an appropriate HTTP response based on the error type.
// Domain errors map to their HTTP status; anything unknown becomes a generic
// 500 with the cause logged server-side only.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var appErr *apperr.Error
	if apperr.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= 500 {
			// Internal causes are for the log, not the client.
			if logger != nil {
				logger.Error("request failed", "code", appErr.Code, "error", err)
			}
			Error(w, status, "Internal Server Error", logger)
			return
		}
		Error(w, status, appErr.Message, logger)
		return
	}

	if logger != nil {
		logger.Error("unhandled error", "error", err)
	}
	InternalError(w, "Internal Server Error", logger)
}
