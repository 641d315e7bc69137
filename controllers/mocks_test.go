package controllers

import (
	"context"
	"sync"

	"galaxy-bites/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockStore is an in-memory DocumentStore. The Func hooks override the
// default behavior when set.
type MockStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	unavailable bool

	CreateFunc          func(ctx context.Context, collection string, entity interface{}) (models.DocumentID, error)
	GetFunc             func(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	CollectionNamesFunc func(ctx context.Context) ([]string, error)
}

func NewMockStore() *MockStore {
	return &MockStore{collections: make(map[string][]bson.M)}
}

func NewUnavailableMockStore() *MockStore {
	s := NewMockStore()
	s.unavailable = true
	return s
}

func (m *MockStore) Available() bool {
	return !m.unavailable
}

func (m *MockStore) Name() string {
	return "galaxy_bites_test"
}

func (m *MockStore) CreateDocument(ctx context.Context, collection string, entity interface{}) (models.DocumentID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, collection, entity)
	}
	return m.insert(collection, entity)
}

// insert stores entity the way a document store would, assigning a fresh
// ObjectID.
func (m *MockStore) insert(collection string, entity interface{}) (models.DocumentID, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return "", err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], doc)
	return models.DocumentID(id.Hex()), nil
}

func (m *MockStore) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, collection, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (m *MockStore) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	docs, err := m.GetDocuments(ctx, collection, filter)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	if m.CollectionNamesFunc != nil {
		return m.CollectionNamesFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	names := []string{}
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

// Count returns how many documents collection holds.
func (m *MockStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

// Docs returns the stored documents of collection as they were inserted.
func (m *MockStore) Docs(collection string) []bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bson.M, 0, len(m.collections[collection]))
	for _, doc := range m.collections[collection] {
		out = append(out, copyDoc(doc))
	}
	return out
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
