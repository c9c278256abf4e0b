package controllers

import (
	"errors"
	"net/http"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// newError writes an error response body for the passed status.
func newError(c *gin.Context, status int, err error) {
	c.JSON(status, httpError{
		Error: err.Error(),
	})
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Transaction errors
var (
	errIDMismatch  = errors.New("the ID in the URL must match the ID in the request body")
	errTypeInvalid = errors.New("the type parameter must be 0 (income) or 1 (expense)")
	errRangeBounds = errors.New("the min and max parameters must both be set to valid decimal numbers")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errCSVHeader       = errors.New("the CSV header must be: category,amount,date,type,notes")
)
