package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
	"github.com/site-content-api/internal/repository"
	"github.com/site-content-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	contentHandler := NewContentHandler(services, log)
	contactHandler := NewContactHandler(services, repos, log)
	proxyHandler := NewProxyHandler(&cfg.Proxy, log)
	colorHandler := NewColorHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))

	// Site API
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/sanity", contentHandler.Query)
		apiGroup.POST("/contact", contactHandler.Submit)
		apiGroup.GET("/contact/:id", contactHandler.GetSubmission)
		apiGroup.GET("/proxy-image", proxyHandler.Image)
		apiGroup.GET("/proxy-video", proxyHandler.Video)
		apiGroup.POST("/extract-color", colorHandler.Extract)
	}

	return router
}

// respondError writes the error envelope every endpoint shares
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"statusCode":    status,
		"statusMessage": message,
	})
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "site-content-api",
	})
}

// metricsHandler exposes basic operational counters
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		submissions := 0
		if repos != nil && repos.Submission != nil {
			submissions, _ = repos.Submission.Count(c.Request.Context())
		}

		c.JSON(http.StatusOK, gin.H{
			"contact_submissions": submissions,
			"timestamp":           time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				respondError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags every request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("request_id", c.GetString("request_id")).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Range")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
