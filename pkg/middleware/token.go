package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// BearerToken exige "Authorization: Bearer <token>" quando token não é vazio.
// Com token vazio a rota fica aberta.
func BearerToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("auth: rejected request with invalid bearer token")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "invalid or missing bearer token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
