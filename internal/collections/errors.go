package collections

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validate"
)

// Domain errors for collection operations.
var (
	ErrNotFound = errors.New("collection not found")
)

// MapHTTPStatus maps collection domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, validate.ErrInvalid) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
