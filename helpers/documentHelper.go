package helpers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StringifyIDs rewrites the "_id" of every document to its string form so
// responses never expose the store's native identifier type.
func StringifyIDs(docs []bson.M) []bson.M {
	for _, doc := range docs {
		switch id := doc["_id"].(type) {
		case primitive.ObjectID:
			doc["_id"] = id.Hex()
		case nil, string:
		default:
			doc["_id"] = fmt.Sprint(id)
		}
	}
	return docs
}
