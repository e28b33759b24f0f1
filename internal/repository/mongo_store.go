package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "kv_entries"

type MongoStore struct {
	coll *mongo.Collection
}

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

var _ port.KVStore = (*MongoStore)(nil)

func NewMongo(database *mongo.Database) (*MongoStore, error) {
	if database == nil {
		return nil, fmt.Errorf("database is nil")
	}

	return &MongoStore{
		coll: database.Collection(mongoCollection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	var entry mongoEntry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("coll.FindOne: %w", err)
	}

	return []byte(entry.Value), nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	update := bson.M{"$set": bson.M{
		"value":      string(value),
		"updated_at": time.Now().UTC(),
	}}

	_, err := s.coll.UpdateByID(ctx, key, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("coll.UpdateByID: %w", err)
	}

	return nil
}
