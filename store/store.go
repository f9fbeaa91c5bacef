package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KeyField is the business key documents are found and updated by.
const KeyField = "orderID"

// Client is the operation surface load tasks run against.
type Client interface {
	Insert(ctx context.Context, doc map[string]interface{}) error
	FindByKey(ctx context.Context, key string) (bson.M, error)
	UpdateByKey(ctx context.Context, key string) (int64, error)
	Close(ctx context.Context) error
}

// Dialer opens a store session. Each operation-kind run opens its own session
// and releases it when the run ends; sessions are never shared across kinds.
type Dialer interface {
	Open(ctx context.Context) (Client, error)
}

// Config identifies the target collection. The URI may carry TLS options
// (for example tlsCAFile) when the store requires a custom trust store.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Open connects to the store and returns a session scoped to the configured
// collection. Config implements Dialer.
func (c Config) Open(ctx context.Context) (Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}
	col := client.Database(c.Database).Collection(c.Collection)
	return &Session{client: client, col: col}, nil
}

// Session is one store connection bound to a single collection.
type Session struct {
	client *mongo.Client
	col    *mongo.Collection
}

// Insert writes one document. No uniqueness pre-check is performed; key
// collisions are controlled entirely by the key-generation scheme.
func (s *Session) Insert(ctx context.Context, doc map[string]interface{}) error {
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// FindByKey returns the first document matching key, or nil when none does.
func (s *Session) FindByKey(ctx context.Context, key string) (bson.M, error) {
	var doc bson.M
	err := s.col.FindOne(ctx, bson.M{KeyField: key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s=%s: %w", KeyField, key, err)
	}
	return doc, nil
}

// UpdateByKey applies the fixed field merge to the document matching key and
// returns how many documents matched. A key with no match is a silent no-op:
// the matched count is zero and no error is raised.
func (s *Session) UpdateByKey(ctx context.Context, key string) (int64, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{KeyField: key}, updateDocument())
	if err != nil {
		return 0, fmt.Errorf("update %s=%s: %w", KeyField, key, err)
	}
	return res.MatchedCount, nil
}

// Close releases the session's connection.
func (s *Session) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
