package routes

import (
	controller "galaxy-bites/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, store controller.DocumentStore) {
	incomingRoutes.POST("/api/seed", controller.SeedMenu(store))
	incomingRoutes.GET("/api/categories", controller.GetCategories(store))
	incomingRoutes.GET("/api/items", controller.GetItems(store))
	incomingRoutes.GET("/api/items/:category_slug", controller.GetItems(store))
}
