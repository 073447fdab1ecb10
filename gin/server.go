// Package gin exposes shopinsight services over HTTP using the gin router.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins is the CORS allowlist used when none is configured.
var DefaultAllowedOrigins = []string{"http://localhost:5173"}

// shutdownTimeout bounds how long in-flight requests may finish on shutdown.
const shutdownTimeout = 10 * time.Second

// Server serves the insight API.
type Server struct {
	Insights shopinsight.InsightService
	Brands   shopinsight.BrandService

	// AllowedOrigins lists CORS origins. A trailing "*" matches any suffix.
	AllowedOrigins []string

	Logger *slog.Logger
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() *gin.Engine {
	router := gin.New()

	origins := s.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	router.Use(RecoveryMiddleware(s.logger()))
	router.Use(LoggerMiddleware(s.logger()))
	router.Use(CORSMiddleware(origins))

	router.GET("/", s.handleIndex)
	router.GET("/health", s.handleHealth)
	router.POST("/fetch-shopify-insights", s.handleFetchInsights)
	router.GET("/brands", s.handleListBrands)
	router.POST("/competitors", s.handleCompetitors)

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger().Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
