package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("DisabledWithoutSecret", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")

		rr := httptest.NewRecorder()
		AuthMiddleware(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/checkout", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("MissingToken", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "top-secret")

		rr := httptest.NewRecorder()
		AuthMiddleware(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/checkout", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "top-secret")

		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", jwt.MapClaims{}))

		rr := httptest.NewRecorder()
		AuthMiddleware(okHandler()).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "top-secret")

		var company string
		h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			company, _ = r.Context().Value(CompanyIDKey).(string)
		}))

		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "top-secret", jwt.MapClaims{
			"company_id": "1",
			"exp":        time.Now().Add(time.Hour).Unix(),
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "1", company)
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("StrictForPaymentLegs", func(t *testing.T) {
		for _, path := range []string{"/checkout", "/return", "/cancel"} {
			limit, burst, tier := resolveRateTier(httptest.NewRequest("GET", path, nil))
			assert.Equal(t, limitStrict, limit, path)
			assert.Equal(t, burstStrict, burst, path)
			assert.Equal(t, "strict", tier, path)
		}
	})

	t.Run("InternalHeader", func(t *testing.T) {
		t.Setenv("INTERNAL_SECRET_KEY", "svc-key")

		req := httptest.NewRequest("GET", "/checkout", nil)
		req.Header.Set("X-Service-Auth", "svc-key")

		limit, _, tier := resolveRateTier(req)
		assert.Equal(t, limitInternal, limit)
		assert.Equal(t, "internal", tier)
	})

	t.Run("GeneralDefault", func(t *testing.T) {
		limit, _, tier := resolveRateTier(httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, "general", tier)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("AllowsWithinBurst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "198.51.100.1:1000"

		rr := httptest.NewRecorder()
		RateLimitMiddleware(okHandler()).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("BlocksBeyondBurst", func(t *testing.T) {
		h := RateLimitMiddleware(okHandler())

		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("GET", "/return", nil)
			req.RemoteAddr = "198.51.100.2:1000"
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			lastCode = rr.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})
}

func TestGetVisitorReuse(t *testing.T) {
	a := getVisitor("ip:test:general", rate.Limit(1), 1)
	b := getVisitor("ip:test:general", rate.Limit(1), 1)
	assert.Same(t, a, b)
}
