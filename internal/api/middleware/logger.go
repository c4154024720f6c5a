package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// Logger logs one line per request: method, path, status and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		// Strip CR/LF from user-supplied values to prevent log injection.
		sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
		log.Printf(
			"%s %s %d %s",
			sanitize(r.Method),
			sanitize(r.URL.Path),
			wrapped.statusCode,
			time.Since(start),
		)
	})
}

// responseWriter captures the status code written by the handler chain.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
