package controllers

import (
	"net/http"

	"galaxy-bites/helpers"
	"galaxy-bites/logger"
	"galaxy-bites/models"

	"github.com/gin-gonic/gin"
)

type CreateOrderResponse struct {
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

// CreateOrder stores a submitted order as-is. Totals are trusted and item
// ids are not resolved against the menu.
func CreateOrder(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "invalid request body",
				"details": helpers.ValidationDetails(err),
			})
			return
		}

		order.Normalize()
		if err := models.Validate(&order); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": helpers.ValidationDetails(err),
			})
			return
		}

		if !storeAvailable(store) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDatabaseNotConfigured})
			return
		}

		ctx := c.Request.Context()
		orderID, err := store.CreateDocument(ctx, models.OrderCollection, &order)
		if err != nil {
			logger.ErrorContext(ctx, "order was not created", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order was not created"})
			return
		}

		logger.InfoContext(ctx, "order received", "order_id", orderID.String(), "items", len(order.Items))
		c.JSON(http.StatusOK, CreateOrderResponse{
			OrderID: orderID.String(),
			Status:  models.OrderStatusReceived,
		})
	}
}
