package server

import "net/http"

// ReadOnlyMiddleware enforces read-only access for demo deployments.
// Only GET, HEAD, and OPTIONS requests are allowed; all other HTTP methods
// are rejected with 405 Method Not Allowed.
func ReadOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			WriteProblem(w, Problem{
				Type:     ProblemTypeForbidden,
				Title:    "Method Not Allowed",
				Status:   http.StatusMethodNotAllowed,
				Detail:   "server is running in read-only mode",
				Instance: r.URL.Path,
			})
		}
	})
}
