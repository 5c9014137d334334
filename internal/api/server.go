package api

import (
	"github.com/gin-gonic/gin"
)

// NewServer wires the HTTP routes onto a gin engine.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", handler.HealthCheck)
	r.POST("/api/analyze", handler.Analyze)
	r.POST("/api/chatbot", handler.Chatbot)
	r.GET("/api/searches", handler.RecentSearches)

	return r
}
