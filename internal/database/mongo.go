package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"docqa/internal/config"
)

var mongoConnect = mongo.Connect

// NewMongo connects to MongoDB, verifies the primary is reachable and returns
// the configured database. The caller owns the client and must Disconnect it.
func NewMongo(c config.MongoConfig) (*mongo.Database, error) {
	if c.URI == "" || c.Database == "" {
		return nil, fmt.Errorf("invalid mongo config: uri and database are required")
	}

	client, err := mongoConnect(options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(c.Database), nil
}
