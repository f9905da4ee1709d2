// Package mongodb implements the repository interfaces on MongoDB.
//
// Documents and questions are stored with their UUID string as _id. Creation
// order comes from a per-collection counter incremented atomically with $inc,
// so concurrent inserts for the same document always resolve to a single latest.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	documentsCollection = "documents"
	questionsCollection = "questions"
	countersCollection  = "counters"
)

// sequence hands out monotonically increasing values for one named counter.
type sequence struct {
	counters *mongo.Collection
	name     string
}

func (s sequence) next(ctx context.Context) (int64, error) {
	var out struct {
		Value int64 `bson:"value"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", s.name, err)
	}
	return out.Value, nil
}

// EnsureIndexes creates the indexes the lookups rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(documentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("create documents indexes: %w", err)
	}
	if _, err := db.Collection(questionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "document_id", Value: 1}, {Key: "seq", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("create questions indexes: %w", err)
	}
	return nil
}
