// Package httpapi exposes the REST API. Every endpoint responds with the
// same envelope carrying exactly one of data or error, plus an optional
// informational message.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"github.com/classicmodels/api/internal/storage"
)

// Response is the uniform envelope returned by all endpoints.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps collection payloads inside the envelope's data field.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Data: data})
}

func writeMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Message: msg})
}

func writeError(c *gin.Context, status int, err error) {
	c.JSON(status, Response{Error: err.Error()})
}

// writeFailure maps an error from the service layer onto a status code.
// Missing rows map to 404, constraint violations to 409, validation
// failures to 400 and anything else to 500.
func writeFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(c, http.StatusNotFound, err)
	case errors.Is(err, storage.ErrConflict), isConstraintViolation(err):
		writeError(c, http.StatusConflict, err)
	case isValidationError(err):
		writeError(c, http.StatusBadRequest, err)
	default:
		writeError(c, http.StatusInternalServerError, err)
	}
}

func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	// Class 23 covers unique, foreign key and not-null violations.
	return errors.As(err, &pqErr) && pqErr.Code.Class() == "23"
}

func isValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
