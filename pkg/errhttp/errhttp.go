// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/petalstore/pkg/httpx"
	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors and storage failures become a 500 with a generic body so
// no internal detail reaches the client.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}
	httpx.JSONError(w, status, message)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, flowerdomain.ErrFlowerNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, flowerdomain.ErrInvalidFlowerName),
		errors.Is(err, flowerdomain.ErrInvalidFlowerColor),
		errors.Is(err, flowerdomain.ErrInvalidPrice),
		errors.Is(err, flowerdomain.ErrInvalidStock),
		errors.Is(err, flowerdomain.ErrInsufficientStock):
		return http.StatusBadRequest // 400
	case errors.Is(err, flowerdomain.ErrStorage):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
