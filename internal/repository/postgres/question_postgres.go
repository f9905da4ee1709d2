package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docqa/internal/model"
	"docqa/internal/repository"
)

// QuestionPostgres is a PostgreSQL implementation of repository.QuestionRepository.
// Ordering relies on the identity column seq, assigned at commit by the database.
type QuestionPostgres struct {
	db *sql.DB
}

// NewQuestionPostgres creates a new QuestionPostgres repository.
func NewQuestionPostgres(db *sql.DB) *QuestionPostgres {
	return &QuestionPostgres{db: db}
}

var _ repository.QuestionRepository = (*QuestionPostgres)(nil)

// Create inserts a question row and returns the stored record.
func (r *QuestionPostgres) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	const stmt = `
		INSERT INTO questions (id, document_id, question, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, document_id, question, created_at
	`
	var out model.Question
	if err := r.db.QueryRowContext(ctx, stmt, q.ID, q.DocumentID, q.Question, q.CreatedAt).Scan(
		&out.ID,
		&out.DocumentID,
		&out.Question,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindLatestByDocument returns the question with the highest seq for documentID.
func (r *QuestionPostgres) FindLatestByDocument(ctx context.Context, documentID string) (*model.Question, error) {
	const q = `
		SELECT id, document_id, question, created_at
		FROM questions
		WHERE document_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`
	var out model.Question
	if err := r.db.QueryRowContext(ctx, q, documentID).Scan(
		&out.ID,
		&out.DocumentID,
		&out.Question,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
