package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"galaxy-bites/config"
	"galaxy-bites/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned by every operation of a Store that has no
// database behind it.
var ErrUnavailable = errors.New("database not available")

// Store is the document accessor shared by all requests. A Store without a
// database is valid and reports itself unavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore wraps an already connected database. A nil db yields an
// unavailable Store.
func NewStore(db *mongo.Database) *Store {
	s := &Store{db: db}
	if db != nil {
		s.client = db.Client()
	}
	return s
}

// Connect opens the client described by cfg and pings it once. When the URL
// is empty or the server cannot be reached, the returned Store is
// unavailable and the error explains why.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	if cfg.URL == "" {
		return &Store{}, errors.New("DATABASE_URL is not set")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return &Store{}, fmt.Errorf("cannot create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return &Store{}, fmt.Errorf("cannot reach mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Name)}, nil
}

// Disconnect closes the underlying client, if any.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name is the database name, or empty when unavailable.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

func (s *Store) openCollection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// CreateDocument serializes entity, stamps it with a new identifier and
// audit timestamps, and inserts it into the named collection.
func (s *Store) CreateDocument(ctx context.Context, collection string, entity interface{}) (models.DocumentID, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}

	doc, err := toDocument(entity)
	if err != nil {
		return "", fmt.Errorf("cannot encode %s document: %w", collection, err)
	}

	id := primitive.NewObjectID()
	now := time.Now().UTC()
	doc = append(bson.D{{Key: "_id", Value: id}}, doc...)
	doc = append(doc,
		bson.E{Key: "created_at", Value: now},
		bson.E{Key: "updated_at", Value: now},
	)

	if _, err := s.openCollection(collection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("could not insert into %s: %w", collection, err)
	}
	return models.DocumentID(id.Hex()), nil
}

// GetDocuments returns every document of collection matching the equality
// filter. A nil or empty filter matches all documents.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.openCollection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", collection, err)
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// Exists reports whether any document of collection matches filter.
func (s *Store) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	if !s.Available() {
		return false, ErrUnavailable
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.openCollection(collection).FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not query %s: %w", collection, err)
	}
	return true, nil
}

// CollectionNames lists the collections of the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("could not list collections: %w", err)
	}
	return names, nil
}

func toDocument(entity interface{}) (bson.D, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var decoded bson.D
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	// Identifiers are only ever assigned here.
	doc := make(bson.D, 0, len(decoded))
	for _, e := range decoded {
		if e.Key != "_id" {
			doc = append(doc, e)
		}
	}
	return doc, nil
}
