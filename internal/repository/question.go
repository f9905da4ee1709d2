package repository

import (
	"context"

	"docqa/internal/model"
)

// QuestionRepository defines data access for questions. Questions are append-only.
type QuestionRepository interface {
	// Create appends a question. The store assigns its ordering key.
	Create(ctx context.Context, q *model.Question) (*model.Question, error)

	// FindLatestByDocument returns the question with the greatest ordering key
	// among those bound to documentID, or ErrNotFound.
	FindLatestByDocument(ctx context.Context, documentID string) (*model.Question, error)
}
