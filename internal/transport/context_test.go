package transport

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithClientInfo(t *testing.T) {
	t.Run("FromRemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/return?order_id=SPabc", nil)
		r.RemoteAddr = "203.0.113.9:51234"

		ctx := WithClientInfo(context.Background(), r)
		assert.Equal(t, "203.0.113.9", ClientIP(ctx))
		assert.Equal(t, "/return?order_id=SPabc", RequestURI(ctx))
	})

	t.Run("PrefersForwardedFor", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/checkout", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")

		ctx := WithClientInfo(context.Background(), r)
		assert.Equal(t, "198.51.100.7", ClientIP(ctx))
	})

	t.Run("BareRemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.9"

		ctx := WithClientInfo(context.Background(), r)
		assert.Equal(t, "203.0.113.9", ClientIP(ctx))
	})
}

func TestClientIPDefault(t *testing.T) {
	assert.Equal(t, "127.0.0.1", ClientIP(context.Background()))
	assert.Equal(t, "", RequestURI(context.Background()))
}
