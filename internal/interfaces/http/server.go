// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/domain/search"
	redisinfra "github.com/your-org/storefront-backend/internal/infrastructure/storage/redis"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	redis      *redisinfra.Client
}

// NewServer creates a new HTTP server with all services wired
func NewServer(cfg *config.Config, redisClient *redisinfra.Client) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		config: cfg,
		router: router,
		redis:  redisClient,
	}

	server.setupMiddleware()
	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupMiddleware configures the global middleware chain
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.Logger(s.config))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.config))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimit(s.config, s.redis.GetClient()))
	s.router.Use(middleware.Timeout(s.config.Server.ReadTimeout))
	s.router.Use(middleware.Session(s.config))
}

// setupRoutes builds the domain services and wires all API routes
func (s *Server) setupRoutes() {
	logger := middleware.NewLogrus(s.config)
	rules := pricing.NewRules(s.config.Pricing)

	catalogService := catalog.NewService()
	store := redisinfra.NewBlobStore(s.redis.GetClient(), s.config.Session.MaxAge)
	cartService := cart.NewService(store, rules, logger)
	checkoutService := checkout.NewService(cartService, rules)
	searchService := search.NewService(catalogService, s.config.Search.DebounceDelay)

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/ready", s.readinessCheck)

	routes.SetupRoutes(s.router, &routes.Handlers{
		Product:  handlers.NewProductHandler(catalogService),
		Cart:     handlers.NewCartHandler(cartService, catalogService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Search:   handlers.NewSearchHandler(searchService),
	})
}

// healthCheck reports process liveness
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().UTC(),
	})
}

// readinessCheck reports whether the server can serve traffic
func (s *Server) readinessCheck(c *gin.Context) {
	if err := s.redis.Health(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "redis connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
