package web

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// basicAuth guards a handler with a single shared bearer token, bcrypt
// hashed at startup. Grounded on the teacher's auth_service.go (bcrypt
// comparison, generic "unauthorized" response to avoid enumeration), but
// collapsed to one static token since this diagnostics server has no
// per-user accounts — it exists only so a field technician can confirm
// the agent is alive, not to administer it.
func basicAuth(tokenHash []byte, next http.Handler) http.Handler {
	if len(tokenHash) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == "" || token == auth {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := bcrypt.CompareHashAndPassword(tokenHash, []byte(token)); err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HashToken bcrypt-hashes a plaintext diagnostics token at startup, so the
// server never retains the plaintext in memory longer than config load.
func HashToken(token string) ([]byte, error) {
	if token == "" {
		return nil, nil
	}
	return bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
}
