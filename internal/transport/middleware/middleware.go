// Package middleware holds the net/http middleware shared by the public and
// admin routes.
package middleware

import (
	"encoding/json"
	"net/http"
	"slices"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(a, b)(h) is a(b(h)): the first
// argument runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			final = mw(final)
		}
		return final
	}
}

// errorBody matches the error envelope written by the rest package.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message}) //nolint:errcheck
}
