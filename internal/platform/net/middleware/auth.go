package middleware

import (
	"net/http"

	pnet "voicejournal/internal/platform/net"
)

// Principal is the verified caller identity placed on the request context
type Principal struct {
	UserID string
	Email  string
}

// AuthPort is implemented by the identity verifier
type AuthPort interface {
	// Verify extracts and validates the bearer credential on the request
	Verify(r *http.Request) (Principal, error)
}

// Auth rejects requests the port cannot verify and annotates the context
// with the principal otherwise. A nil port disables verification, which
// local development and tests rely on
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pr, err := p.Verify(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(
				pnet.WithPrincipal(r.Context(), pr.UserID, pr.Email),
			))
		})
	}
}
