package transport

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type ctxKey string

const (
	clientIPKey   ctxKey = "clientIP"
	requestURIKey ctxKey = "requestURI"
)

// WithClientInfo captures the caller's IP and request URI at the HTTP
// boundary so downstream code receives them as plain values instead of
// digging through ambient request state.
func WithClientInfo(ctx context.Context, r *http.Request) context.Context {
	ctx = context.WithValue(ctx, clientIPKey, clientIP(r))
	ctx = context.WithValue(ctx, requestURIKey, r.RequestURI)
	return ctx
}

func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	if ip == "" {
		return "127.0.0.1"
	}
	return ip
}

func RequestURI(ctx context.Context) string {
	uri, _ := ctx.Value(requestURIKey).(string)
	return uri
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
