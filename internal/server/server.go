package server

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/content"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *slog.Logger
	router  *gin.Engine
	profile content.Profile
}

// New creates a new Server instance
func New(cfg *config.Config, profile content.Profile, logger *slog.Logger) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}
	// Development: no reverse proxy, uses direct client IP

	server := &Server{
		config:  cfg,
		logger:  logger,
		router:  router,
		profile: profile,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	router.Use(clientHintsMiddleware())
	server.setupRoutes()

	return server
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// Router returns the underlying gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	// Public assets (resume, project images) take precedence when present.
	// A directory without index.html falls through to the routes below.
	s.router.Use(static.Serve("/", static.LocalFile(s.config.PublicDir, false)))

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err) // embedded at build time
	}
	s.router.StaticFileFS("/assets/typewriter.js", "typewriter.js", http.FS(assets))

	s.router.GET("/", s.handleIndex)
	s.router.POST("/theme/toggle", s.handleThemeToggle)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/profile", s.handleProfile)
		api.GET("/theme", s.handleTheme)
		api.GET("/typewriter/frames", s.handleFrames)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "portfolio",
	})
}
