package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, L())
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, L())
	})
}

func TestL_LazyInit(t *testing.T) {
	log = nil
	assert.NotNil(t, L())
}

func TestSync(t *testing.T) {
	Init("development")
	// Sync on a console logger may fail on stdout; it must not panic.
	assert.NotPanics(t, func() { Sync() })
}

func TestRequestIDContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-1")
		assert.Equal(t, "req-1", RequestIDFrom(ctx))
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, "", RequestIDFrom(context.Background()))
	})

	t.Run("FromCtx", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-2")
		assert.NotNil(t, FromCtx(ctx))
		assert.NotNil(t, FromCtx(context.Background()))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
	})

	t.Run("PropagatesHeader", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "upstream-id", seen)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	Init("development")

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/checkout", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
