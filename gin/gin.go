// Package gin exposes brand profile scraping and storage over a JSON HTTP
// API built on the gin web framework.
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

// DefaultAddr is the listen address used when Server.Addr is empty.
const DefaultAddr = ":8000"

// shutdownTimeout bounds how long Close waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// Server serves the brand API.
type Server struct {
	server *http.Server
	ln     net.Listener
	router *gin.Engine

	// Addr is the TCP address to listen on.
	Addr string

	Scraper      shopinsight.Scraper
	BrandService shopinsight.BrandService
	Logger       *slog.Logger
}

// NewServer returns a server with its routes registered. Origins lists the
// CORS origins allowed to call the API; "*" allows any origin. A nil
// limiter leaves scrape requests unthrottled.
func NewServer(scraper shopinsight.Scraper, brands shopinsight.BrandService, logger *slog.Logger, origins []string, limiter *ClientLimiter) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		Addr:         DefaultAddr,
		Scraper:      scraper,
		BrandService: brands,
		Logger:       logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(origins))

	router.GET("/", s.handleHealth)
	router.POST("/fetch_insights/", RateLimitMiddleware(limiter), s.handleFetchInsights)

	brandsGroup := router.Group("/brands")
	{
		brandsGroup.GET("", s.handleListBrands)
		brandsGroup.GET("/:id", s.handleGetBrand)
		brandsGroup.DELETE("/:id", s.handleDeleteBrand)
	}

	s.router = router
	s.server = &http.Server{Handler: router}
	return s
}

// ServeHTTP lets the server be driven directly, e.g. by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() error {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("server stopped", "err", err)
		}
	}()
	return nil
}

// URL returns the address the server is listening on.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
