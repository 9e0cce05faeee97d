// Package http exposes the ledger as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wallet/internal/middleware/ratelimit"
	"wallet/internal/middleware/security"
	"wallet/internal/middleware/trace"
	"wallet/internal/store"
)

type Server struct {
	http.Server
	ledger      store.Ledger
	rateLimiter *ratelimit.Limiter

	shutdownOnce sync.Once
}

type Options struct {
	// RequestsPerMinute caps mutating requests per client IP. Zero uses the
	// rate limiter default.
	RequestsPerMinute int
}

// NewServer wires routes and middleware, returning a ready-to-run server.
func NewServer(addr string, ledger store.Ledger, opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ledger: ledger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RequestsPerMinute,
		}),
	}

	mux.HandleFunc("/expenses", s.handleExpenses)
	mux.HandleFunc("/expenses/", s.handleExpenseByID)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/reports/categories", s.handleCategoryReport)
	mux.HandleFunc("/healthz", handleHealth)

	traceMw := trace.NewMiddleware(clientIP)
	headersMw := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	limitMw := s.rateLimiter.Middleware(clientIP, nil)

	var handler http.Handler = mux
	handler = limitOnlyMutations(limitMw)(handler)
	handler = headersMw.Middleware(handler)
	handler = traceMw.Middleware(handler)
	s.Handler = handler

	return s
}

// limitOnlyMutations applies the rate limiter to writes; reads pass through.
func limitOnlyMutations(limit func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodDelete:
				limited.ServeHTTP(w, r)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// Shutdown stops the rate limiter cleanup goroutine and drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
