// Package server provides the HTTP REST API over the screening core.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNoCorpus indicates no candidate or job data has been loaded
type ErrNoCorpus struct{}

func (e *ErrNoCorpus) Error() string {
	return "no candidate corpus loaded"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNoCorpus:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
