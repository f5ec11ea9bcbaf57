package middleware

import "net/http"

// NoCache stops browsers and proxies from caching rendered pages.
// Flash banners and one-shot form errors must never come out of a
// cache.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
