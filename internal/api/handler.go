// Package api is the HTTP dispatcher: it routes the dashboard's JSON API,
// serves the static frontend with single-page fallback, and translates
// domain results into response payloads and status codes.
package api

import (
	"net/http"

	"go.uber.org/zap"

	"finboard/internal/catalog"
	"finboard/internal/portfolio"

	"github.com/gin-gonic/gin"
)

// searchLimit caps /api/search results.
const searchLimit = 5

// Options tunes transport-level behavior of the server.
type Options struct {
	StaticDir       string  // directory holding the built frontend
	MaxBodyBytes    int64   // request body cap for JSON endpoints
	RateLimitPerSec float64 // per-IP request rate
	RateLimitBurst  int
}

// Server wires HTTP endpoints around the catalog and portfolio store.
type Server struct {
	Router    *gin.Engine
	Catalog   *catalog.Catalog
	Portfolio portfolio.Store
	Logger    *zap.Logger

	staticDir    string
	maxBodyBytes int64
}

// NewServer builds the router with the full middleware stack. The catalog is
// injected rather than read from a package global so tests can run against
// synthetic datasets.
func NewServer(cat *catalog.Catalog, store portfolio.Store, logger *zap.Logger, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.RateLimitPerSec <= 0 {
		opts.RateLimitPerSec = 20
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 50
	}

	r := gin.New()

	// Middleware stack (order matters!)
	r.Use(gin.Recovery())        // Panic recovery (first)
	r.Use(RequestIDMiddleware()) // Request ID tracking
	r.Use(RequestLogger(logger)) // Request logging (after ID is set)
	r.Use(RateLimitMiddleware(opts.RateLimitPerSec, opts.RateLimitBurst))
	r.Use(CORSMiddleware()) // CORS (last before routes)

	s := &Server{
		Router:       r,
		Catalog:      cat,
		Portfolio:    store,
		Logger:       logger,
		staticDir:    opts.StaticDir,
		maxBodyBytes: opts.MaxBodyBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)

	api := s.Router.Group("/api")
	{
		api.GET("/search", s.search)
		api.GET("/stock/:symbol", s.getStock)
		api.GET("/news/:symbol", s.getNews)
		api.GET("/recommendation/:symbol", s.getRecommendation)

		api.GET("/portfolio", s.getPortfolio)
		api.POST("/portfolio", s.buyHolding)
		api.DELETE("/portfolio/:symbol", s.removeHolding)
	}

	// Anything else: 404 for the API prefix, static assets with SPA
	// fallback for the rest. Wrong method on a known path lands here too
	// and gets the same 404, matching the original contract.
	s.Router.NoRoute(s.fallback)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Start(addr string) error {
	return s.Router.Run(addr)
}
