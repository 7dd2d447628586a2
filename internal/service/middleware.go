package service

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// CountryLocator resolves a requester IP to an ISO country code.
type CountryLocator interface {
	Country(ip string) string
}

type contextKey string

const (
	ctxKeyCountry  contextKey = "requester_country"
	ctxKeyClientIP contextKey = "client_ip"
)

func countryFrom(ctx context.Context) string {
	if c, ok := ctx.Value(ctxKeyCountry).(string); ok && c != "" {
		return c
	}
	return "Unknown"
}

func clientIPFrom(ctx context.Context) string {
	if ip, ok := ctx.Value(ctxKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// geoDetect resolves the client IP (first X-Forwarded-For hop, falling
// back to the socket address) to a country and stashes both in the
// request context for the resolver and the click path.
func geoDetect(locator CountryLocator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			ctx := context.WithValue(r.Context(), ctxKeyClientIP, ip)
			ctx = context.WithValue(ctx, ctxKeyCountry, locator.Country(ip))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		slog.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"host", r.Host,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
