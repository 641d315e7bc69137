package routes

import (
	controller "galaxy-bites/controllers"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(incomingRoutes *gin.Engine, store controller.DocumentStore, databaseURLSet bool) {
	incomingRoutes.GET("/", controller.Home())
	incomingRoutes.GET("/test", controller.TestDatabase(store, databaseURLSet))
}
