package middleware

import (
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the local dev origins plus the deployed frontend origin.
func CORS() gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins:     common.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}
