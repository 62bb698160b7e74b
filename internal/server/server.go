// Package server exposes the study tools over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/search"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

// AI is the part of the gateway the API serves.
type AI interface {
	TutorResponse(ctx context.Context, prompt string, history []gateway.Turn) string
	FindMaterials(ctx context.Context, query string, goal catalog.Goal) []catalog.Material
}

// Deps are the services behind the handlers. Repo may be nil, in which
// case quiz results are scored but not stored.
type Deps struct {
	AI   AI
	Repo store.EventRepo
	Log  *zap.SugaredLogger

	// NewRand seeds unseeded quiz builds. Defaults to a random PCG.
	NewRand func() *rand.Rand
}

type Server struct {
	cfg      config.ServerConfig
	deps     Deps
	searcher *search.Searcher
	metrics  *Metrics
	engine   *gin.Engine
}

func New(cfg config.ServerConfig, deps Deps) *Server {
	if deps.Log == nil {
		deps.Log = zap.NewNop().Sugar()
	}
	if deps.NewRand == nil {
		deps.NewRand = func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:      cfg,
		deps:     deps,
		searcher: search.New(deps.AI),
		metrics:  NewMetrics(),
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.engine.Use(s.metrics.Middleware())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", s.metrics.Handler())

	api := s.engine.Group("/api")
	api.Use(newRateLimiter(s.cfg.RateLimit).middleware(s.metrics.rateLimited.Inc))
	{
		api.GET("/goals", s.goals)
		api.GET("/quiz/:goal", s.buildQuiz)
		api.POST("/quiz/score", s.scoreQuiz)
		api.POST("/tutor", s.tutor)
		api.POST("/materials/search", s.searchMaterials)
		api.POST("/links", s.links)
	}
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.deps.Log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// Run serves on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Log.Infow("http server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.deps.Log.Infow("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
