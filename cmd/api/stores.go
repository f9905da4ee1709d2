package main

import (
	"context"
	"fmt"

	"docqa/internal/config"
	"docqa/internal/database"
	"docqa/internal/database/migration"
	"docqa/internal/repository"
	"docqa/internal/repository/mongodb"
	"docqa/internal/repository/postgres"
)

// stores holds the repositories backed by the configured driver.
type stores struct {
	documents repository.DocumentRepository
	questions repository.QuestionRepository
	close     func(context.Context) error
}

// openStores connects to the configured database and prepares its schema.
func openStores(ctx context.Context) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return &stores{
			documents: postgres.NewDocumentPostgres(db),
			questions: postgres.NewQuestionPostgres(db),
			close:     func(context.Context) error { return db.Close() },
		}, nil

	case config.StoreDriverMongo:
		db, err := database.NewMongo(cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = db.Client().Disconnect(ctx)
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		log.WithField("database", cfg.Mongo.Database).Info("mongo indexes ensured")
		return &stores{
			documents: mongodb.NewDocumentMongo(db),
			questions: mongodb.NewQuestionMongo(db),
			close:     db.Client().Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
