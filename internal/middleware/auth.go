package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	CompanyIDKey   contextKey = "companyID"
	TokenClaimsKey contextKey = "jwtClaims"
)

// AuthMiddleware validates the collaborator's bearer token on checkout
// initiation. Return and cancel legs stay open since the payer arrives there
// from the processor redirect without credentials.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jwtKey := []byte(os.Getenv("SECRET_KEY"))
		if len(jwtKey) == 0 {
			// No collaborator secret configured, auth is disabled.
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
			if company, ok := claims["company_id"].(string); ok {
				ctx = context.WithValue(ctx, CompanyIDKey, company)
			}
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
