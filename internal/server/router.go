// Package server assembles the HTTP surface of the API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/alert"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/analytics"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/cache"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/config"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/device"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/logger"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/maintenance"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/metrics"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/reading"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/zone"
)

// HealthStatus is reported by GET /api/health.
const HealthStatus = "Backend API is running"

// NewRouter wires every handler onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, c cache.Cache, log *zap.Logger) *gin.Engine {
	params.UseJSONFieldNames()

	r := gin.New()
	r.Use(
		logger.RequestID(),
		logger.Middleware(log),
		gin.Recovery(),
		metrics.Middleware(),
		cors.New(corsConfig(cfg.CORS.AllowedOrigins)),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    HealthStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	zone.NewHandler(db, log).RegisterRoutes(api)
	device.NewHandler(db, log).RegisterRoutes(api)
	reading.NewHandler(db, log, cfg.MaxLimit).RegisterRoutes(api)
	alert.NewHandler(db, log, cfg.MaxLimit).RegisterRoutes(api)
	maintenance.NewHandler(db, log).RegisterRoutes(api)

	agg := analytics.New(db, c, log)
	analytics.NewHandler(agg, log).RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	if cfg.HTTP.StaticDir != "" {
		r.Static("/dashboard", cfg.HTTP.StaticDir)
	}

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	}
	r.NoRoute(notFound)
	r.NoMethod(notFound)

	return r
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = origins
	return cc
}
