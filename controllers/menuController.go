package controllers

import (
	"net/http"

	"galaxy-bites/helpers"
	"galaxy-bites/logger"
	"galaxy-bites/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func GetCategories(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listDocuments(c, store, models.MenuCategoryCollection, bson.M{})
	}
}

// GetItems lists menu items, restricted to one category when the
// category_slug path parameter is present.
func GetItems(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if slug := c.Param("category_slug"); slug != "" {
			filter["category_slug"] = slug
		}
		listDocuments(c, store, models.MenuItemCollection, filter)
	}
}

// listDocuments answers with the matching documents, or an empty list when
// there is no store to read from.
func listDocuments(c *gin.Context, store DocumentStore, collection string, filter bson.M) {
	if !storeAvailable(store) {
		c.JSON(http.StatusOK, []bson.M{})
		return
	}

	docs, err := store.GetDocuments(c.Request.Context(), collection, filter)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "listing documents failed", "collection", collection, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing " + collection})
		return
	}
	c.JSON(http.StatusOK, helpers.StringifyIDs(docs))
}
