package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates the CORS middleware for the dashboard frontend. The API is
// same-credential JSON only; no auth headers cross the browser boundary since
// the feed API key lives server-side.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
