package dto

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// NotFoundMessage is the body of every 404 response.
const NotFoundMessage = "Todo not found"

// ErrorStatus maps an error to its HTTP status code.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the plain-text body for err. Store failures expose
// the driver message verbatim, however deeply they were wrapped.
func ErrorMessage(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return NotFoundMessage
	}

	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	return err.Error()
}

// WriteError writes err as a text/plain response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteText(w, r, ErrorStatus(err), ErrorMessage(err))
}

// WriteText writes a text/plain response with the given status.
func WriteText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write response body",
			logging.Err(err),
		)
	}
}
