package httpresult

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmitrymomot/outcome/pkg/result"
)

// StatusClientClosedRequest is the non-standard status used for canceled operations.
const StatusClientClosedRequest = 499

// StatusFor returns the status code Write uses for res.
func StatusFor(res result.Result) int {
	switch res.FailureType() {
	case result.FailureNone:
		return http.StatusNoContent
	case result.FailureValidation, result.FailureError:
		return http.StatusBadRequest
	case result.FailureSecurity:
		return http.StatusUnauthorized
	case result.FailureNotFound:
		return http.StatusNotFound
	case result.FailureServerError:
		return http.StatusInternalServerError
	case result.FailureOperationCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// Write renders res without a body on success (204) and as a failure
// response otherwise. Validation failures are written as problem details.
func Write(w http.ResponseWriter, res result.Result) {
	if res.IsSuccess() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeFailure(w, res)
}

// WriteValue renders a success as 200 with the JSON-encoded value.
func WriteValue[T any](w http.ResponseWriter, res result.Of[T]) {
	v, ok := res.Value()
	if !ok {
		writeFailure(w, res.Result())
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Handler adapts fn to an http.HandlerFunc that writes its result with WriteValue.
func Handler[T any](fn func(*http.Request) result.Of[T]) http.HandlerFunc {
	if fn == nil {
		panic(ErrNilHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		WriteValue(w, fn(r))
	}
}

func writeFailure(w http.ResponseWriter, res result.Result) {
	status := StatusFor(res)
	if res.FailureType() != result.FailureValidation {
		writeText(w, status, res.ErrorMessage())
		return
	}

	body, err := json.Marshal(problemFor(res, status))
	if err != nil {
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", MediaTypeProblemJSON+"; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeText(w http.ResponseWriter, status int, text string) {
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}
