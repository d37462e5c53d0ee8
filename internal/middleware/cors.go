package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin to play. Games are anonymous and short-lived, so
// there is nothing to protect a browser from.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler
}
