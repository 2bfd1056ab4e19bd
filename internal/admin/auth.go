// internal/admin/auth.go
//
// Admin access gate.
//
// The original site compared a single hardcoded password in the browser
// and remembered it in localStorage.  Moving the comparison server-side
// at least keeps the secret out of shipped JavaScript, but one shared
// secret is still an access gate, not a security boundary: there are no
// accounts, no sessions, and no audit trail.  Treat it accordingly.
package admin

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// RequireKey rejects requests whose bearer secret does not match key.
// The secret is read from "Authorization: Bearer …" or the X-Admin-Key
// header.
func RequireKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Key")
			if got == "" {
				if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
					got = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "admin key required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
