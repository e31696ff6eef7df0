package httpapi

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// CorrelationHeader carries the request id back to the caller
const CorrelationHeader = "X-Correlation-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.status = http.StatusOK
		r.wrote = true
	}
	return r.ResponseWriter.Write(b)
}

// recoverer turns handler panics into an opaque 500
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				writeError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogging tags the request with a correlation id and logs its outcome
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := uuid.NewString()
		logger := s.logger.With(
			slog.String("correlation_id", correlationID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		ctx := common.WithCorrelationID(r.Context(), correlationID)
		ctx = common.WithLogger(ctx, logger)
		r = r.WithContext(ctx)

		w.Header().Set(CorrelationHeader, correlationID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		logger.Info("HTTP request started")
		defer func() {
			elapsed := time.Since(start)
			if p := recover(); p != nil {
				logger.Error("HTTP request failed",
					slog.Int64("elapsed_ms", elapsed.Milliseconds()),
					slog.Any("panic", p))
				s.recordRequest(r, http.StatusInternalServerError, elapsed)
				panic(p)
			}
			logger.Info("HTTP request completed",
				slog.Int("status", rec.status),
				slog.Int64("elapsed_ms", elapsed.Milliseconds()))
			s.recordRequest(r, rec.status, elapsed)
		}()

		next.ServeHTTP(rec, r)
	})
}

func (s *Server) recordRequest(r *http.Request, status int, elapsed time.Duration) {
	if s.httpMetrics == nil {
		return
	}
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	s.httpMetrics.RecordHTTPRequest(r.Method, route, status, elapsed.Seconds())
}

// rateLimit rejects clients that exceed their request budget with 429
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.allow(clientIP(r)) {
			if s.httpMetrics != nil {
				s.httpMetrics.RecordRateLimited(r.Method)
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(s.limiter.window.Seconds())))
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "Too many requests."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth validates the bearer token and stores the principal in the context
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, r, shared.NewUnauthorizedError("missing bearer token"))
			return
		}

		principal, err := s.verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger := common.LoggerFromContext(r.Context()).With(slog.String("user", principal.Username))
		ctx := auth.WithPrincipal(r.Context(), principal)
		ctx = common.WithLogger(ctx, logger)
		next(w, r.WithContext(ctx))
	}
}

// clientLimiter keeps one token bucket per client address
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	limit    rate.Limit
	burst    int
	window   time.Duration
	lastScan time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(requests int, window time.Duration) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*clientEntry),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		window:  window,
	}
}

func (l *clientLimiter) allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Idle clients have a full bucket again, so their entries can go.
	if now.Sub(l.lastScan) > l.window {
		for key, entry := range l.clients {
			if now.Sub(entry.lastSeen) > l.window {
				delete(l.clients, key)
			}
		}
		l.lastScan = now
	}

	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
