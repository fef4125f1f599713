package auth

import (
	"errors"
	"net/http"

	"github.com/Jamolkhon5/projassist/internal/apierror"
)

// Middleware rejects requests without a valid bearer token before they reach
// the wrapped handler.
func (i *Issuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := i.VerifyToken(r)
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, ErrMissingToken) {
				msg = "Missing bearer token"
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			apierror.Write(w, apierror.Wrap(apierror.KindInvalidToken, err, msg))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
	})
}
