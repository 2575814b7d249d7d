package prompts

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validate"
)

// Domain errors for prompt operations.
var (
	ErrNotFound           = errors.New("prompt not found")
	ErrInvalidReference   = errors.New("referenced collection does not exist")
	ErrCollectionNotFound = errors.New("collection not found")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrCollectionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidReference) {
		return http.StatusBadRequest
	}
	if errors.Is(err, validate.ErrInvalid) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
