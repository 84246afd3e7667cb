package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/api/types"
)

// Options configures the HTTP server
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxHeaderBytes  int
	MaxRequestBytes int64

	EnableCORS  bool
	CORSOrigins []string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	opts               Options
	logger             *zap.Logger
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(opts Options, deps *types.Dependencies) *Server {
	if deps == nil {
		deps = &types.Dependencies{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxHeaderBytes <= 0 {
		opts.MaxHeaderBytes = 1 << 20
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		opts:         opts,
		logger:       logger,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           opts.Address,
			Handler:        engine,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: opts.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestLogger(s.logger))

	if s.opts.EnableCORS {
		s.engine.Use(CORS(s.opts.CORSOrigins))
	}

	if s.opts.MaxRequestBytes > 0 {
		s.engine.Use(RequestSizeLimitWithSize(s.opts.MaxRequestBytes))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	var limiter gin.HandlerFunc
	if s.opts.RateLimitEnabled && s.opts.RateLimitRPS > 0 {
		limiter = PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized, s.opts.RateLimitRPS, s.opts.RateLimitBurst)
	}
	return RegisterRoutes(s.engine, s.dependencies, limiter)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.cleanupStop)
	})
	return s.httpServer.Shutdown(ctx)
}
