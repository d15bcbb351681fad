package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/weinert-art/commission-service/pkg/utils"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminAuth пропускает запрос только с верным админским паролем в заголовке.
func AdminAuth(password string) func(next http.Handler) http.Handler {
	secret := []byte(password)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(adminPasswordHeader))
			if subtle.ConstantTimeCompare(got, secret) != 1 {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
