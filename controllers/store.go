package controllers

import (
	"context"

	"galaxy-bites/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the persistence contract the handlers rely on. It is
// satisfied by *database.Store.
type DocumentStore interface {
	Available() bool
	Name() string
	CreateDocument(ctx context.Context, collection string, entity interface{}) (models.DocumentID, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	Exists(ctx context.Context, collection string, filter bson.M) (bool, error)
	CollectionNames(ctx context.Context) ([]string, error)
}

const msgDatabaseNotConfigured = "Database not configured"

func storeAvailable(store DocumentStore) bool {
	return store != nil && store.Available()
}
