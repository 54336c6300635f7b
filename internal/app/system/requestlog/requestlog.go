// Package requestlog tags each request with an ID and logs its outcome.
package requestlog

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

type ctxKey struct{}

// ID returns the request ID stored by Middleware, or "".
func ID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Logger returns base annotated with the request ID, when there is one.
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	if id := ID(ctx); id != "" {
		return base.With(zap.String("request_id", id))
	}
	return base
}

// Middleware accepts a caller-supplied UUID in X-Request-ID or generates one,
// echoes it on the response and logs one line per request.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(Header, id)
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
			}
			if status >= http.StatusInternalServerError {
				logger.Warn("request failed", fields...)
				return
			}
			logger.Debug("request", fields...)
		})
	}
}
