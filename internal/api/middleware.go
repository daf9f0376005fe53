package api

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
	"github.com/listenupapp/luckysign/internal/id"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/ratelimit"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// requestContext assigns a request ID, echoes it back, and stores a logger
// tagged with it in the request context. Incoming IDs are reused when sane.
func requestContext(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" || len(reqID) > 64 || strings.ContainsAny(reqID, " \t\r\n") {
				generated, err := id.NewRequestID()
				if err != nil {
					generated = "req-unknown"
				}
				reqID = generated
			}
			w.Header().Set(RequestIDHeader, reqID)

			ctx := logger.NewContext(r.Context(), base.WithField("request_id", reqID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// accessLog logs one line per request after it completes.
func accessLog(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.FromContext(r.Context(), base)
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"ip", r.RemoteAddr,
			}
			if status >= http.StatusInternalServerError {
				log.Error("request", args...)
			} else {
				log.Info("request", args...)
			}
		})
	}
}

// corsHandler allows browser clients from the configured origins.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match", RequestIDHeader},
		ExposedHeaders: []string{"ETag", "X-Blurhash", RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}

// rateLimit rejects requests to paths under prefix once the client IP has
// spent its budget. It expects middleware.RealIP to have run first.
func rateLimit(limiter *ratelimit.KeyedRateLimiter, prefix string, base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			key := clientIP(r)
			if !limiter.Allow(key) {
				logger.FromContext(r.Context(), base).Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				retry := int(math.Ceil(limiter.Delay(key).Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
				writeError(w, domainerrors.ErrRateLimited.WithMessage("Too many requests. Please try again later."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr, which RealIP has already
// replaced with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.Trim(r.RemoteAddr, "[]")
	}
	return host
}
