package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrMalformedRequest indicates a request body that could not be decoded.
type ErrMalformedRequest struct {
	Cause error
}

func (e *ErrMalformedRequest) Error() string {
	return fmt.Sprintf("malformed request: %v", e.Cause)
}

// ErrUpstream indicates a dependency (vector store, LLM) failure.
type ErrUpstream struct {
	Service string
	Cause   error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream %s failure: %v", e.Service, e.Cause)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrMalformedRequest:
		return http.StatusBadRequest
	case *ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
