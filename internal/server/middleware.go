package server

import (
	"log/slog"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/hanaburkart/portfolio/internal/config"
)

// headerPrefersColorScheme is the user agent client hint for the OS theme.
const headerPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"

// setupSecurityMiddleware configures and applies security middleware to the router
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	// Configure HSTS for production only
	stsSeconds := int64(0)
	if cfg.Env == config.EnvProduction {
		stsSeconds = int64(cfg.HSTSMaxAge)
	}

	// Create and apply security middleware
	secureMiddleware := secure.New(secure.Config{
		STSSeconds:            stsSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	})
	router.Use(secureMiddleware)

	logger.Debug("Configured security middleware",
		"hsts_enabled", cfg.Env == config.EnvProduction,
		"csp_mode", cfg.CSPMode,
	)
}

// clientHintsMiddleware asks browsers to send their color scheme and marks
// responses as varying on it.
func clientHintsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", headerPrefersColorScheme)
		c.Header("Critical-CH", headerPrefersColorScheme)
		c.Header("Vary", headerPrefersColorScheme+", Cookie")
		c.Next()
	}
}
