package response

import (
	"net/http"

	"github.com/dmitrymomot/staticserve/core/handler"
)

// statusCode is implemented by errors that carry a custom HTTP status.
type statusCode interface {
	StatusCode() int
}

// Error returns a handler response that propagates the given error.
// This is useful for passing an error through to be handled by middleware
// or the transport's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// WriteError renders err to w. Errors implementing StatusCode() int choose
// their status; everything else is an internal server error.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}
	http.Error(w, err.Error(), status)
}
