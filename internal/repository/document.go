package repository

import (
	"context"

	"docqa/internal/model"
)

// DocumentRepository defines data access for documents.
// Persistence only; documents are append-only.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored document.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// FindLatest returns the most recently created document, or ErrNotFound when empty.
	// Ties on created_at are broken by the store's insertion order.
	FindLatest(ctx context.Context) (*model.Document, error)

	// List returns a page of documents, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Ping checks connectivity with the backing store.
	Ping(ctx context.Context) error
}
