package rest

import (
	"net/http"
	"strconv"

	"fraud-monitoring-system/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine) {
	// Events endpoint
	router.GET("/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		events := logger.GetEvents(limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint
	router.GET("/stats", func(c *gin.Context) {
		stats := logger.GetStats()
		c.JSON(http.StatusOK, stats)
	})
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(CORSMiddleware())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// API endpoints
	router.POST("/submit", handlers.SubmitTransaction)
	router.GET("/anomalous", handlers.GetAnomalous)
	router.GET("/data", handlers.GetData)
	router.GET("/blacklist", handlers.GetBlacklist)
	router.POST("/blacklist", handlers.AddToBlacklist)
	router.DELETE("/blacklist/:account_number", handlers.RemoveFromBlacklist)
	router.DELETE("/clear", handlers.ClearLedger)
	router.GET("/generate", handlers.GenerateRandomTransaction)
	router.GET("/health", handlers.HealthCheck)

	// Общие endpoints (events, stats)
	SetupCommonEndpoints(router)

	return router
}
