package routes

import (
	controller "galaxy-bites/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, store controller.DocumentStore) {
	incomingRoutes.POST("/api/order", controller.CreateOrder(store))
}
