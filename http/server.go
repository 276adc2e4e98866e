// Package http exposes the apidoc resolver and search engine as a read-only
// JSON API routed with gorilla/mux.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/apidoc"
	"github.com/gorilla/mux"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// serving context is canceled.
const ShutdownTimeout = 5 * time.Second

// Server serves the apidoc JSON API.
type Server struct {
	Resolver apidoc.Resolver
	Search   apidoc.SearchService
	Logger   *slog.Logger

	// Limiter throttles requests per client when set.
	Limiter *ClientLimiter

	router  *mux.Router
	handler http.Handler
}

// NewServer creates a Server with all routes registered. metrics may be nil,
// in which case /metrics is not served.
func NewServer(resolver apidoc.Resolver, search apidoc.SearchService, metrics http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		Resolver: resolver,
		Search:   search,
		Logger:   logger,
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/resolve", s.handleResolve).Methods(http.MethodGet)
	s.router.HandleFunc("/pages", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/types", s.handleSearchTypes).Methods(http.MethodGet)
	s.router.HandleFunc("/types/{name}", s.handleType).Methods(http.MethodGet)
	s.router.HandleFunc("/members", s.handleSearchMembers).Methods(http.MethodGet)
	s.router.HandleFunc("/namespaces", s.handleNamespaces).Methods(http.MethodGet)
	s.router.HandleFunc("/namespaces/{name}", s.handleNamespace).Methods(http.MethodGet)
	if metrics != nil {
		s.router.Handle("/metrics", metrics).Methods(http.MethodGet)
	}

	s.handler = withRequestID(s.recoverPanics(s.logRequests(s.limitRate(s.router))))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully. Requests in flight at cancellation run to completion within
// ShutdownTimeout; their contexts carry ctx's values but not its
// cancellation.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	base := context.WithoutCancel(ctx)
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("listening", "addr", ln.Addr().String())
	}
	return s.Serve(ctx, ln)
}
