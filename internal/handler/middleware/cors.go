package middleware

import (
	"log/slog"
	"slices"

	"locker-hub/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy. A "*" origin allows every origin
// and turns credentials off, which browsers require for wildcard responses.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
