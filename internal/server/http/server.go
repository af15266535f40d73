// Package http provides the public HTTP API of the tenantnotes server: a gin
// engine wrapped in an http.Server with graceful shutdown.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mzaharov/tenantnotes/internal/logging"
	"github.com/mzaharov/tenantnotes/internal/server/services"
)

// ginModeOnce ensures gin.SetMode is only called once to avoid race conditions.
var ginModeOnce sync.Once

type Server struct {
	address    string
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger

	identities *services.IdentityService
	tenants    *services.TenantService
	notes      *services.NoteService
}

func NewServer(address string, l logging.Logger, is *services.IdentityService, ts *services.TenantService, ns *services.NoteService) (*Server, error) {

	ginModeOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
	})

	s := &Server{
		address:    address,
		engine:     gin.New(),
		logger:     l.With("module", "http_server"),
		identities: is,
		tenants:    ts,
		notes:      ns,
	}

	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {

	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.GET("/profile", s.authenticate(), s.profile)

	tenantGroup := api.Group("/tenants/:slug", s.authenticate(), s.requireTenant())
	tenantGroup.GET("", s.getTenant)
	tenantGroup.POST("/upgrade", s.requireAdmin(), s.upgradeTenant)

	noteGroup := tenantGroup.Group("/notes")
	noteGroup.POST("", s.createNote)
	noteGroup.GET("", s.listNotes)
	noteGroup.GET("/:id", s.getNote)
	noteGroup.PUT("/:id", s.updateNote)
	noteGroup.DELETE("/:id", s.deleteNote)
}

func (s *Server) Run(ctx context.Context) error {

	s.httpServer = &http.Server{
		Addr:         s.address,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Multi-Tenant Notes API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
