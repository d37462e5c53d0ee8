package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares to h. The last one listed ends up outermost and
// sees every request first.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
