package controllers

import (
	"net/http"

	"galaxy-bites/logger"
	"galaxy-bites/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type SeedResponse struct {
	InsertedCategories int `json:"inserted_categories"`
	InsertedItems      int `json:"inserted_items"`
}

// SeedMenu inserts the reference categories and items that are not stored
// yet. Categories are matched by slug and items by title, so repeated calls
// insert nothing. Each insert stands alone; a failure keeps earlier ones.
func SeedMenu(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !storeAvailable(store) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDatabaseNotConfigured})
			return
		}
		ctx := c.Request.Context()

		var resp SeedResponse
		for _, category := range models.SeedCategories() {
			inserted, err := seedOne(c, store, models.MenuCategoryCollection, bson.M{"slug": category.Slug}, &category)
			if err != nil {
				logger.ErrorContext(ctx, "seeding category failed", "slug", category.Slug, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if inserted {
				resp.InsertedCategories++
			}
		}

		for _, item := range models.SeedItems() {
			item.Normalize()
			inserted, err := seedOne(c, store, models.MenuItemCollection, bson.M{"title": item.Title}, &item)
			if err != nil {
				logger.ErrorContext(ctx, "seeding item failed", "title", item.Title, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if inserted {
				resp.InsertedItems++
			}
		}

		logger.InfoContext(ctx, "menu seeded",
			"inserted_categories", resp.InsertedCategories,
			"inserted_items", resp.InsertedItems)
		c.JSON(http.StatusOK, resp)
	}
}

func seedOne(c *gin.Context, store DocumentStore, collection string, key bson.M, entity interface{}) (bool, error) {
	ctx := c.Request.Context()

	exists, err := store.Exists(ctx, collection, key)
	if err != nil {
		return false, err
	}
	if exists {
		logger.DebugContext(ctx, "seed record already stored", "collection", collection, "key", key)
		return false, nil
	}
	if err := models.Validate(entity); err != nil {
		return false, err
	}
	if _, err := store.CreateDocument(ctx, collection, entity); err != nil {
		return false, err
	}
	return true, nil
}
