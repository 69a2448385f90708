package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// NotFound is the body for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusNotFound, map[string]string{
		"error":      "not_found",
		"message":    "The requested resource was not found",
		"suggestion": "Try /api/health to check server status",
	})
}

// MethodNotAllowed is the body for known paths hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error":   "method_not_allowed",
		"message": r.Method + " is not supported on " + r.URL.Path,
	})
}

// Unexpected reports a fault that escaped a handler.
func Unexpected(w http.ResponseWriter, msg, kind string) {
	JSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "unexpected_error",
		"message": msg,
		"type":    kind,
	})
}

// ErrBadBody is returned by Decode for malformed or mistyped JSON.
var ErrBadBody = errors.New("invalid request body")

// Decode reads a JSON body into dst. An empty body
// leaves dst untouched.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrBadBody
	}
	return nil
}
