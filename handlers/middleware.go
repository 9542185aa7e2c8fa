package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/VivekbirN/SDP-project/db"
	"golang.org/x/time/rate"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Store is the shared bill store used by all handlers.
var Store db.BillStore

// Now is the clock used for payment dates when none is supplied.
var Now = time.Now

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data}); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeInternal logs err and answers 500 without leaking driver details.
func writeInternal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, msg)
}

// BasicAuth returns middleware that enforces HTTP Basic Authentication.
// With no credentials configured it lets every request through.
func BasicAuth(user, pass string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if user == "" && pass == "" {
			slog.Warn("auth.user and auth.pass not set, API is unauthenticated")
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 ||
				subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="utility-bills"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit returns middleware admitting perSecond requests per second with
// a burst of twice that. Zero disables limiting.
func RateLimit(perSecond int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if perSecond <= 0 {
			return next
		}
		limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond*2)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
