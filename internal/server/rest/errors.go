package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskify/internal/common"
)

// ErrorWriter maps service errors to HTTP responses. With Verbose set,
// internal failures echo the underlying message; otherwise the client gets
// a generic line and the detail stays in the server log.
type ErrorWriter struct {
	Verbose bool
}

func (ew ErrorWriter) WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, common.ErrDuplicateEmail):
		Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, common.ErrorNotFound):
		Error(w, "task not found", http.StatusNotFound)
	default:
		if ew.Verbose {
			Error(w, "internal error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		Error(w, "internal error", http.StatusInternalServerError)
	}
}
