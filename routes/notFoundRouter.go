package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NotFoundRoute(incomingRoutes *gin.Engine) {
	incomingRoutes.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})
}
