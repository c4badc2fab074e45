package handler

import (
	"net/http"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": common.Environment,
		"version":     common.Version,
	})
}
